package core

import "time"

// Account is a registered credential record.
//
// SessionID and ResetToken are independent nullable fields: each is set and
// cleared by its own lifecycle event. At most one session and one reset
// token are live per account at a time; issuing a new value overwrites the
// previous one.
type Account struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose in JSON
	SessionID      *string   `json:"-"` // Never expose in JSON
	ResetToken     *string   `json:"-"` // Never expose in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Request carries the inbound request metadata the core reads. The HTTP
// layer populates it; the core never touches framework request types.
type Request struct {
	Path    string
	Headers map[string]string
	Cookies map[string]string
}

// Header returns the named header value, or "" when absent.
func (r *Request) Header(name string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers[name]
}

// Cookie returns the named cookie value, or "" when absent.
func (r *Request) Cookie(name string) string {
	if r == nil || r.Cookies == nil {
		return ""
	}
	return r.Cookies[name]
}
