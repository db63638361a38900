package client

import (
	"sync"
	"time"
)

type request struct {
	ArticleID string
	Accessed  time.Time
}

// mediate access to the requests-map using a mutex,
// the map is maintained concurrently by the request handlers
var registry = struct {
	sync.RWMutex
	requests map[string]request // key is the client IP
}{}

type Registry struct {
}

func (r Registry) Initialize() {
	registry.requests = make(map[string]request)
}

// Continue reports whether a request counts as a new visit.
// A client re-requesting the same article is a page refresh
func (r Registry) Continue(client string, articleID string) bool {

	registry.RLock()
	found := !(registry.requests[client].ArticleID == articleID)
	registry.RUnlock()

	// add or update the last (relevant) request
	req := request{
		ArticleID: articleID,
		Accessed:  time.Now(),
	}

	registry.Lock()
	registry.requests[client] = req
	registry.Unlock()

	return found
}

// Flush removes requests from the registry which are older than 15 minutes
// usually called by a GO-routine that runs in a ticker
func (r Registry) Flush() {

	registry.Lock()
	now := time.Now()
	if len(registry.requests) > 5000 {
		// it's safe to just delete expired keys, since iterations over maps are not ordered
		for key, value := range registry.requests {
			// remove if last access was 15 mins ago
			if now.Sub(value.Accessed).Minutes() > 15 {
				delete(registry.requests, key)
			}
		}
	}
	registry.Unlock()
}

// Count returns how many different clients are currently active
func (r Registry) Count() int {
	registry.RLock()
	cnt := len(registry.requests)
	registry.RUnlock()
	return cnt
}

// Dump returns the last accessed article and timestamp for each client
func (r Registry) Dump(max int) []request {

	var res []request

	registry.RLock()
	i := 0
	for _, v := range registry.requests {
		if i >= max {
			break
		}
		res = append(res, request{ArticleID: v.ArticleID, Accessed: v.Accessed})
		i++
	}
	registry.RUnlock()

	return res
}
