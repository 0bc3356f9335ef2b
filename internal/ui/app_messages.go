package ui

// ShowErrorBoxMsg opens the fatal error dialog (SPC d e, or any hook failure).
type ShowErrorBoxMsg struct {
	Text string
}

// ShowMessageBoxMsg opens an informational dialog (SPC d m, SPC d n).
// An empty Button means the dialog is dismissed from the keyboard only.
type ShowMessageBoxMsg struct {
	Text       string
	Button     string
	AcceptKeys bool
}

// ShowPromptBoxMsg opens a yes/no question (SPC d p). Accepting quits.
type ShowPromptBoxMsg struct {
	Text   string
	Accept string
	Cancel string
}

// StatusMsg replaces the text of the status line.
type StatusMsg struct {
	Text string
}

// DialogGeometryMsg carries new dialog dimensions from a config reload.
type DialogGeometryMsg struct {
	Geometry DialogGeometry
}
