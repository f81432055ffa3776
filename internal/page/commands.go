// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "github.com/MKhiriev/go-bus-pass/models"

// CommandKind enumerates the user and environment events a page reacts to.
type CommandKind int

const (
	CmdSubmit CommandKind = iota
	CmdClickHeader
	CmdInputChange
	CmdConnectivityChange
	CmdDismiss
	CmdCopyText
	CmdDownloadQR
	CmdToggleMenu
	CmdFollowAnchor
)

var commandNames = map[CommandKind]string{
	CmdSubmit:             "submit",
	CmdClickHeader:        "click_header",
	CmdInputChange:        "input_change",
	CmdConnectivityChange: "connectivity_change",
	CmdDismiss:            "dismiss",
	CmdCopyText:           "copy_text",
	CmdDownloadQR:         "download_qr",
	CmdToggleMenu:         "toggle_menu",
	CmdFollowAnchor:       "follow_anchor",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one event dispatched to a Controller. Build it with the
// constructor for its kind.
type Command struct {
	Kind CommandKind

	// Target is the form or table id, or the anchor name.
	Target string
	// Field is the field id of an input change.
	Field string
	// Column is the header index of a header click.
	Column int
	// Value is the input value, copied text or download URL.
	Value string
	// Filename is the name a download is saved under.
	Filename string

	State          models.ConnectivityState
	NotificationID models.NotificationID
}

// Submit is a submission attempt of form formID.
func Submit(formID string) Command {
	return Command{Kind: CmdSubmit, Target: formID}
}

// ClickHeader activates header column of table tableID.
func ClickHeader(tableID string, column int) Command {
	return Command{Kind: CmdClickHeader, Target: tableID, Column: column}
}

// InputChange sets field fieldID of form formID to value.
func InputChange(formID, fieldID, value string) Command {
	return Command{Kind: CmdInputChange, Target: formID, Field: fieldID, Value: value}
}

// ConnectivityChange reports a transition to state.
func ConnectivityChange(state models.ConnectivityState) Command {
	return Command{Kind: CmdConnectivityChange, State: state}
}

// Dismiss closes a notification.
func Dismiss(id models.NotificationID) Command {
	return Command{Kind: CmdDismiss, NotificationID: id}
}

// CopyText copies text to the clipboard.
func CopyText(text string) Command {
	return Command{Kind: CmdCopyText, Value: text}
}

// DownloadQR saves the image at url as filename.
func DownloadQR(filename, url string) Command {
	return Command{Kind: CmdDownloadQR, Filename: filename, Value: url}
}

// ToggleMenu opens or closes the navigation menu.
func ToggleMenu() Command {
	return Command{Kind: CmdToggleMenu}
}

// FollowAnchor scrolls to an in-page section.
func FollowAnchor(target string) Command {
	return Command{Kind: CmdFollowAnchor, Target: target}
}

// Outcome reports what a dispatched command did.
type Outcome struct {
	Kind CommandKind
	// Handled is false when the command was a no-op: a blocked submission,
	// an already dismissed notification, an unknown anchor, a clipboard
	// that is unavailable or a header that is not sortable.
	Handled bool
	// Validation is set for submissions.
	Validation *models.ValidationResult
	// Value is the stored field value after an input change, the written
	// path of a download or the current anchor.
	Value string
	// MenuOpen is the menu state after a toggle.
	MenuOpen bool
}
