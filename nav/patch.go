package nav

import (
	"maps"
	"slices"
)

// Patch is a partial context update. A kind mapped to nil empties that
// slot; kinds not in the patch keep whatever they held.
type Patch map[ContextKind]Payload

func NewPatch(payloads ...Payload) Patch {
	p := Patch{}
	for _, pl := range payloads {
		p = p.Set(pl)
	}
	return p
}

// Set writes payload into its slot. A nil payload is ignored.
func (p Patch) Set(payload Payload) Patch {
	if payload == nil {
		return p
	}
	if p == nil {
		p = Patch{}
	}
	p[payload.Kind()] = payload
	return p
}

// Clear empties the given slots.
func (p Patch) Clear(kinds ...ContextKind) Patch {
	if p == nil {
		p = Patch{}
	}
	for _, k := range kinds {
		p[k] = nil
	}
	return p
}

// Kinds returns the touched slots in a stable order.
func (p Patch) Kinds() []ContextKind {
	kinds := slices.Collect(maps.Keys(p))
	slices.Sort(kinds)
	return kinds
}

// applyTo returns a new Slots with the patch merged in; base is untouched.
func (p Patch) applyTo(base Slots) Slots {
	next := maps.Clone(base)
	if next == nil {
		next = Slots{}
	}
	for k, v := range p {
		if v == nil {
			delete(next, k)
			continue
		}
		next[k] = v
	}
	return next
}
