package schema

import (
	"github.com/shyptr/gqlcore/ast"
)

// GetScalar returns the scalar type named name, if present.
func (s *Schema) GetScalar(name string) (ScalarType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return ScalarType{}, false
	}
	v, ok := t.(ScalarType)
	return v, ok
}

// GetObject returns the object type named name, if present.
func (s *Schema) GetObject(name string) (ObjectType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return ObjectType{}, false
	}
	v, ok := t.(ObjectType)
	return v, ok
}

// GetInterface returns the interface type named name, if present.
func (s *Schema) GetInterface(name string) (InterfaceType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return InterfaceType{}, false
	}
	v, ok := t.(InterfaceType)
	return v, ok
}

// GetUnion returns the union type named name, if present.
func (s *Schema) GetUnion(name string) (UnionType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return UnionType{}, false
	}
	v, ok := t.(UnionType)
	return v, ok
}

// GetEnum returns the enum type named name, if present.
func (s *Schema) GetEnum(name string) (EnumType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return EnumType{}, false
	}
	v, ok := t.(EnumType)
	return v, ok
}

// GetInputObject returns the input-object type named name, if present.
func (s *Schema) GetInputObject(name string) (InputObjectType, bool) {
	t, ok := s.Types.Get(name)
	if !ok {
		return InputObjectType{}, false
	}
	v, ok := t.(InputObjectType)
	return v, ok
}

// TypeField looks up fieldName on the object or interface type named
// typeName. Both false results mean "no such field"; distinguishing "no
// such type" from "no such field" is the caller's job via GetObject /
// GetInterface first if it matters.
func (s *Schema) TypeField(typeName, fieldName string) (Field, bool) {
	t, ok := s.Types.Get(typeName)
	if !ok {
		return Field{}, false
	}
	switch v := t.(type) {
	case ObjectType:
		c, ok := v.Fields.Get(fieldName)
		if !ok {
			return Field{}, false
		}
		return *c.Get(), true
	case InterfaceType:
		c, ok := v.Fields.Get(fieldName)
		if !ok {
			return Field{}, false
		}
		return *c.Get(), true
	default:
		return Field{}, false
	}
}

// RootOperation returns the object-type name bound to op, if any.
func (s *Schema) RootOperation(op ast.OperationType) (string, bool) {
	var slot *ComponentName
	switch op {
	case ast.Mutation:
		slot = s.Root.Mutation
	case ast.Subscription:
		slot = s.Root.Subscription
	default:
		slot = s.Root.Query
	}
	if slot == nil {
		return "", false
	}
	return *slot.Get(), true
}

// ImplementersMap returns, for every interface name, the object and
// interface types that declare it in their implements list (§4.6
// "interface implementation" validators and introspection's possibleTypes
// both need this).
func (s *Schema) ImplementersMap() map[string][]string {
	out := make(map[string][]string)
	s.Types.ForEach(func(name string, t ExtendedType) {
		var implements OrderedComponentNames
		switch v := t.(type) {
		case ObjectType:
			implements = v.Implements
		case InterfaceType:
			implements = v.Implements
		default:
			return
		}
		for _, ifaceName := range implements.Keys() {
			out[ifaceName] = append(out[ifaceName], name)
		}
	})
	return out
}

// OrderedComponentNames is the Implements-list shape object and interface
// types share.
type OrderedComponentNames = interface {
	Keys() []string
}

// PossibleTypes returns the concrete object-type names a selection on
// name could resolve to at runtime: name itself if it is an object type,
// its members if a union, or the object types among its (transitive)
// implementers if an interface.
func (s *Schema) PossibleTypes(name string) []string {
	if _, ok := s.GetObject(name); ok {
		return []string{name}
	}
	if u, ok := s.GetUnion(name); ok {
		return append([]string(nil), u.Members.Keys()...)
	}
	if _, ok := s.GetInterface(name); ok {
		impl := s.ImplementersMap()
		seen := make(map[string]bool)
		var out []string
		var walk func(iface string)
		walk = func(iface string) {
			for _, implName := range impl[iface] {
				if seen[implName] {
					continue
				}
				seen[implName] = true
				if _, ok := s.GetInterface(implName); ok {
					walk(implName)
					continue
				}
				out = append(out, implName)
			}
		}
		walk(name)
		return out
	}
	return nil
}

// IsSubtype reports whether concrete is a member of abstract: either
// concrete implements the interface abstract, or abstract is a union and
// concrete is one of its members.
func (s *Schema) IsSubtype(abstract, concrete string) bool {
	if u, ok := s.GetUnion(abstract); ok {
		return u.Members.Has(concrete)
	}
	if _, ok := s.GetInterface(abstract); ok {
		for _, name := range s.ImplementersMap()[abstract] {
			if name == concrete {
				return true
			}
		}
	}
	return false
}

// IsOutputType reports whether t names a scalar, object, interface,
// union or enum — any type legal in field-return position (§3 "Output
// types").
func (s *Schema) IsOutputType(t ast.Type) bool {
	switch s.kindOf(ast.InnerNamedType(t).Text) {
	case ScalarKind, ObjectKind, InterfaceKind, UnionKind, EnumKind:
		return true
	default:
		return false
	}
}

// IsInputType reports whether t names a scalar, enum or input-object —
// any type legal in argument/variable position (§3 "Input types").
func (s *Schema) IsInputType(t ast.Type) bool {
	switch s.kindOf(ast.InnerNamedType(t).Text) {
	case ScalarKind, EnumKind, InputObjectKind:
		return true
	default:
		return false
	}
}

func (s *Schema) kindOf(name string) TypeKind {
	t, ok := s.Types.Get(name)
	if !ok {
		return -1
	}
	return t.Kind()
}
