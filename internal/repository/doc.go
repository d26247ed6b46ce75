// Package repository holds the bot's in-memory state.
//
// Nothing here survives a restart. Store keeps users, events and the event id
// counter behind a single RWMutex: lookups take the read lock and return
// copies, and every find-then-mutate sequence (UpdateEvent, DeleteEventIf)
// runs entirely under the write lock.
//
// # Example Usage
//
//	store := repository.NewStore(repository.DefaultEventIDBase)
//	event := store.CreateEvent(senderID)
//	_, err := store.UpdateEvent(event.ID, func(e *model.Event) error {
//	    e.Set(model.EventFieldName, "Picnic")
//	    return nil
//	})
//
// SeenMessages is a TTL set of webhook message ids used to drop retries.
package repository
