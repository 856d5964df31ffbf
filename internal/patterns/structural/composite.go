package structural

import (
	"context"
	"fmt"
	"io"
	"slices"
)

// FileSystemItem is the component shared by leaves and composites.
type FileSystemItem interface {
	Display(w io.Writer)
}

type File struct {
	Name string
}

func (f *File) Display(w io.Writer) { fmt.Fprintf(w, "File: %s\n", f.Name) }

type Directory struct {
	Name  string
	items []FileSystemItem
}

func NewDirectory(name string, items ...FileSystemItem) *Directory {
	return &Directory{Name: name, items: slices.Clone(items)}
}

func (d *Directory) Add(item FileSystemItem) { d.items = append(d.items, item) }

// Remove deletes the first child identical to item.
func (d *Directory) Remove(item FileSystemItem) bool {
	i := slices.Index(d.items, item)
	if i < 0 {
		return false
	}
	d.items = slices.Delete(d.items, i, i+1)
	return true
}

func (d *Directory) Len() int { return len(d.items) }

func (d *Directory) Display(w io.Writer) {
	fmt.Fprintf(w, "Directory: %s\n", d.Name)
	for _, it := range d.items {
		it.Display(w)
	}
}

func CompositeDemo(_ context.Context, w io.Writer) error {
	dir1 := NewDirectory("dir1", &File{Name: "file1.txt"}, &File{Name: "file2.txt"})
	root := NewDirectory("root", dir1, &File{Name: "file3.txt"})

	root.Display(w)
	return nil
}
