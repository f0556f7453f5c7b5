package jsonir

type patchConfig struct {
	createParents bool
}

type PatchOption func(*patchConfig)

// CreateParents makes add, move and copy create missing parents along the
// target path, the way ir.Node.Ref does, instead of failing.
func CreateParents(v bool) PatchOption {
	return func(c *patchConfig) { c.createParents = v }
}
