// Package storage writes downloaded wallpapers to the output directory.
//
// The Manager creates the directory once (recursively, idempotently) and
// writes each image through a temporary file followed by a rename, so an
// interrupted write never leaves a partial image under the final name.
// Existing files with the same name are replaced; there is no duplicate
// detection.
//
// Usage:
//
//	manager, err := storage.NewManager("downloads")
//	if err != nil {
//	    return err
//	}
//	path, err := manager.Save(storage.FileNameFromLink(href), data)
package storage
