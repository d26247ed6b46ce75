// Package service implements the chat command engine.
//
// ChatService takes a sender id and the raw message text, classifies it
// with the command package, runs the matching operation against the
// repository store and returns a model.ReplyAction. It never returns an
// error to its caller: sentinel errors from errors.go are turned into
// reply text in replies.go, and a recover at the dispatch boundary catches
// anything else.
//
// # Rules
//
//   - Only an event's host may rename it, link a page, open its menu with
//     "edit", or delete it.
//   - A missing event is reported before a permission problem.
//   - Setting allergies replaces the previous list; joining an event merges
//     the list into the event without duplicates.
//
// # Example Usage
//
//	chat := service.NewChatService(service.ChatServiceConfig{
//	    Store:  repository.NewStore(repository.DefaultEventIDBase),
//	    Logger: slog.Default(),
//	})
//	reply := chat.Handle(ctx, senderID, "set allergies: nuts, fish")
package service
