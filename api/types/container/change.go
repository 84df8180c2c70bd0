package container

import "fmt"

// ChangeType classifies one filesystem change in a container's writable
// layer.
type ChangeType uint8

const (
	// ChangeModify is a changed file or directory.
	ChangeModify ChangeType = 0
	// ChangeAdd is an added file or directory.
	ChangeAdd ChangeType = 1
	// ChangeDelete is a deleted file or directory.
	ChangeDelete ChangeType = 2
)

// String formats the change kind the way docker diff prints it.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeModify:
		return "C"
	case ChangeAdd:
		return "A"
	case ChangeDelete:
		return "D"
	}
	return ""
}

// FilesystemChange is one entry of a container diff.
type FilesystemChange struct {
	Kind ChangeType `json:"Kind"`
	Path string     `json:"Path"`
}

func (change FilesystemChange) String() string {
	return fmt.Sprintf("%s %s", change.Kind, change.Path)
}
