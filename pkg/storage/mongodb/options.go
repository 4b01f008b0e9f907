package mongodb

import (
	"errors"
	"time"
)

type Option func(*Mongo)

func MaxConnAttempts(attempts int) Option {
	return func(m *Mongo) {
		m.connAttempts = attempts
	}
}

func BaseRetryDelay(delay time.Duration) Option {
	return func(m *Mongo) {
		m.baseRetryDelay = delay
	}
}

func MaxRetryDelay(delay time.Duration) Option {
	return func(m *Mongo) {
		m.maxRetryDelay = delay
	}
}

func ConnectTimeout(timeout time.Duration) Option {
	return func(m *Mongo) {
		m.connectTimeout = timeout
	}
}

func (m *Mongo) validate() error {
	if m.connAttempts <= 0 {
		return errors.New("invalid connAttempts: must be > 0")
	}

	if m.baseRetryDelay <= 0 {
		return errors.New("invalid base retry delay: must be > 0")
	}

	if m.maxRetryDelay <= 0 {
		return errors.New("invalid max retry delay: must be > 0")
	}

	if m.baseRetryDelay > m.maxRetryDelay {
		return errors.New("baseRetryDelay cannot exceed maxRetryDelay")
	}

	if m.connectTimeout <= 0 {
		return errors.New("invalid connect timeout: must be > 0")
	}
	return nil
}
