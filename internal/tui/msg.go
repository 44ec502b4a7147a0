package tui

import "github.com/tcrtodo/tcrtodo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTCRFinished is sent when a TCR run completes, successfully or not.
// FlushedVersion is the store version whose snapshot the run persisted;
// the handler clears the dirty flag only if the store still matches it.
type MsgTCRFinished struct {
	Err            error
	Record         domain.TCRRecord
	FlushedVersion int
}

func (MsgTCRFinished) sealed() {}

// MsgExported is sent when an export snapshot has been written.
type MsgExported struct {
	Path string
}

func (MsgExported) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
