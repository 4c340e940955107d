// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// terminal and web consoles.
//
// All Msg* constants are human-readable strings shown to the user as
// notifications or written into rendered pages. Keeping them in one place
// keeps the wording of both consoles identical.
package app

const (
	// MsgInvalidDataProvided prefixes validation failures detected before a
	// request is sent.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is rendered when a console page cannot be built.
	MsgInternalServerError = "internal server error"

	// MsgPageNotFound is rendered for paths outside the route table.
	MsgPageNotFound = "page not found"

	// MsgKnowledgeNotFound is shown when an entry no longer exists.
	MsgKnowledgeNotFound = "knowledge entry not found"

	// MsgKnowledgeCreated is shown after a successful create.
	MsgKnowledgeCreated = "knowledge entry created"

	// MsgKnowledgeUpdated is shown after a successful update.
	MsgKnowledgeUpdated = "knowledge entry updated"

	// MsgKnowledgeDeleted is shown after a successful delete.
	MsgKnowledgeDeleted = "knowledge entry deleted"

	// MsgNewSession is shown when the chat transcript is reset.
	MsgNewSession = "new conversation started"

	// MsgAnswerCopied is shown after the last answer was copied to the
	// clipboard.
	MsgAnswerCopied = "answer copied to clipboard"

	// MsgNothingToCopy is shown when the transcript has no answer yet.
	MsgNothingToCopy = "no answer to copy yet"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// written.
	MsgClipboardUnavailable = "clipboard is not available"

	// MsgServerUnavailable replaces an answer when the QA server could not be
	// reached.
	MsgServerUnavailable = "the QA server is unavailable"

	// MsgNoAnswer replaces an answer the backend rejected.
	MsgNoAnswer = "no answer received"

	// MsgInvalidID is shown when a path or form carries a malformed entry id.
	MsgInvalidID = "invalid knowledge id"
)
