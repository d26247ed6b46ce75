// Package config manages application configuration for the bot.
//
// Configuration is read from environment variables. A .env file in the
// working directory is loaded first when present:
//
//	cfg, err := config.Load()
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// # Environment Variables
//
//	SERVER_PORT / PORT            - HTTP port (default: 5000)
//	SERVER_ENV                    - development, production or test
//	SERVER_URL                    - public URL of the bot, with protocol
//	SERVER_STATIC_DIR             - directory holding assets/ (default: public)
//	MESSENGER_APP_SECRET          - signs webhook callbacks
//	MESSENGER_VALIDATION_TOKEN    - webhook subscription verify token
//	MESSENGER_PAGE_ACCESS_TOKEN   - Send API token
//	MESSENGER_GRAPH_URL           - Graph API base URL
//	MESSENGER_SET_GREETING        - set the greeting text at startup
//	STORE_EVENT_ID_BASE           - first event id (default: 1000)
//	STORE_SEED_DEMO               - add the demo user and event
//	DEBUG_COMMANDS_ENABLED        - allow the "debug" chat command
//	SEND_QUEUE_SIZE, SEND_WORKERS - outbound delivery tuning
//	RATE_LIMIT_PER_MINUTE         - webhook requests per minute per client
package config
