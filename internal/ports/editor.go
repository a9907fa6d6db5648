package ports

// LaunchInfo describes an editor process that was started
type LaunchInfo struct {
	Editor string // configured editor command, e.g. "code"
	Path   string // resolved executable
	Dir    string // directory handed to the editor
	PID    int
}

// EditorLauncher defines the interface for starting an external editor on a directory
type EditorLauncher interface {
	// Editor returns the configured editor command
	Editor() string

	// Resolve returns the absolute path of the editor executable
	Resolve() (string, error)

	// Launch starts the editor on dir and returns without waiting for it to exit
	Launch(dir string) (*LaunchInfo, error)
}
