// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify carries transient user-facing messages (toasts) from the
// transport layer to whichever console is rendering.
//
// Producers depend on the [Notifier] interface. The consoles read
// notifications back from a [Toasts] queue, which expires them after a
// fixed time to live.
package notify

import (
	"time"
)

// Level classifies a notification for rendering.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single transient message.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier accepts notifications. Implementations must be safe for
// concurrent use; the HTTP client calls Notify from request goroutines.
type Notifier interface {
	Notify(n Notification)
}

// Error sends an error-level notification stamped with the current time.
func Error(n Notifier, message string) {
	send(n, LevelError, message)
}

// Success sends a success-level notification stamped with the current time.
func Success(n Notifier, message string) {
	send(n, LevelSuccess, message)
}

// Warning sends a warning-level notification stamped with the current time.
func Warning(n Notifier, message string) {
	send(n, LevelWarning, message)
}

// Info sends an info-level notification stamped with the current time.
func Info(n Notifier, message string) {
	send(n, LevelInfo, message)
}

func send(n Notifier, level Level, message string) {
	if n == nil {
		return
	}
	n.Notify(Notification{Level: level, Message: message, CreatedAt: time.Now()})
}

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type nop struct{}

func (nop) Notify(Notification) {}

// Nop returns a Notifier that drops everything.
func Nop() Notifier {
	return nop{}
}

// Multi fans a notification out to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	list := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			list = append(list, n)
		}
	}

	return NotifierFunc(func(n Notification) {
		for _, target := range list {
			target.Notify(n)
		}
	})
}
