package domain

import "time"

// Client is a shop customer. Name is the business key: the store keeps at
// most one Client per name and never rewrites an existing one.
type Client struct {
	Name             string
	Machine          string
	RegistrationDate time.Time
	Email            string
	CreatedAt        time.Time
}
