package ports

// ProjectInitializer scaffolds patterns.yaml and the working directories under root.
type ProjectInitializer interface {
	Init(root string, force bool) error
}
