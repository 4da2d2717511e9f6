package domain

import "errors"

// ApplicationMessage is an application.submitted event pulled from RabbitMQ
type ApplicationMessage struct {
	ApplicationID int64  `json:"application_id"`
	JobID         int64  `json:"job_id"`
	DeliveryTag   uint64 `json:"-"`
}

var (
	// ErrApplicationNotFound is returned when the event references an
	// application that no longer exists (e.g. its job was deleted and the
	// row cascaded away)
	ErrApplicationNotFound = errors.New("application not found")
)
