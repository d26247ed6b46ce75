// Package jobs implements background work for the bot.
//
// # Outbox
//
// Replies are not sent from the webhook request. The handler enqueues a
// Delivery and returns 200 right away; Outbox workers call the Send API.
//
//	outbox := jobs.NewOutbox(client, jobs.OutboxConfig{QueueSize: 256})
//	outbox.Start()
//	defer outbox.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed delivery is
// not retried.
package jobs
