package domain

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnhandledAction   = errors.New("no handler registered for action")
	ErrInvalidPayload    = errors.New("invalid action payload")
	ErrWindowNotFound    = errors.New("window not found")
	ErrUnknownWindow     = errors.New("unknown window type")
	ErrStateNotFound     = errors.New("persisted state not found")
	ErrInvalidSyncPath   = errors.New("invalid sync path")
	ErrNotWorkingCopy    = errors.New("not an svn working copy")
	ErrUpdaterDisabled   = errors.New("updater feed not configured")
	ErrNothingToCommit   = errors.New("no pending paths to commit")
	ErrUnsupportedSyntax = errors.New("unsupported source language")
	ErrCredentialMissing = errors.New("credential not found")
	ErrNoCompleter       = errors.New("completion service unavailable")
)
