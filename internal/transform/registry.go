package transform

import (
	"plugin"
	"strings"
	"sync"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Factory produces a fresh transformer instance.
type Factory func() Transformer

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"Identity":  func() Transformer { return Identity{} },
		"Dummy":     func() Transformer { return Dummy{} },
		"Sanitizer": func() Transformer { return NewSanitizer() },
	}
)

// Register adds a named factory to the built-in transformer namespace.
// Registering an existing name replaces it.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// Resolve turns a "<module>/<Name>" spec into a transformer instance. An
// empty module resolves Name against the built-in registry. A non-empty
// module is loaded as a Go plugin from that path, and Name must export
// either a Transformer or a func() Transformer.
//
// Every failure wraps domain.ErrBadTransformer: configuration is assumed
// correct or the operator must fix it, so callers should treat the error
// as fatal and not retry.
func Resolve(spec string) (Transformer, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 2 {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadTransformer, "transformer spec is malformed"), "spec", spec)
	}

	module, name := parts[0], parts[1]
	if module == "" {
		registryMu.RLock()
		factory, ok := registry[name]
		registryMu.RUnlock()
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrBadTransformer, "unknown built-in transformer"), "name", name)
		}
		return factory(), nil
	}

	return resolvePlugin(module, name)
}

// resolvePlugin late-binds an out-of-tree transformer shipped as a Go
// plugin relative to the execution directory.
func resolvePlugin(module, name string) (Transformer, error) {
	p, err := plugin.Open(module)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadTransformer, "cannot load transformer module"), "module", module)
	}

	sym, err := p.Lookup(name)
	if err != nil {
		notFound := zerr.Wrap(domain.ErrBadTransformer, "transformer not found in module")
		return nil, zerr.With(zerr.With(notFound, "module", module), "name", name)
	}

	switch s := sym.(type) {
	case Transformer:
		return s, nil
	case *Transformer:
		return *s, nil
	case func() Transformer:
		return s(), nil
	default:
		incapable := zerr.Wrap(domain.ErrBadTransformer, "symbol does not satisfy the transformer capability")
		return nil, zerr.With(zerr.With(incapable, "module", module), "name", name)
	}
}
