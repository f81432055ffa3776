package peripheral

//go:generate mockgen -source=interfaces.go -destination=../mock/peripheral_mock.go -package=mock

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}
