package registry

import (
	"errors"
	"reflect"
	"sync"
	"time"

	"csv-serializer/typedecl"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("registry: nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("registry: empty name provided")
	// ErrConflictingRegistration indicates an attempt to register a name
	// that is already bound to a different type.
	ErrConflictingRegistration = errors.New("registry: conflicting type registration")
)

// Reflect is a registry of Go types keyed by declared name.
//
// A registered type is an enum when it is a defined type whose kind is an integer or a string,
// and a date when it (or its pointer) implements DateTime.
type Reflect struct {
	dateInterface string
	// mu serializes writers so that conflict detection is atomic
	mu sync.Mutex
	// m maps declared name to reflect.Type.
	m sync.Map
}

var _ TypeRegistry = (*Reflect)(nil)

// NewReflect returns a Reflect registry with time.Time and the DateTime capability pre-registered.
func NewReflect() *Reflect {
	r := &Reflect{dateInterface: DateTimeInterface}
	r.m.Store(r.dateInterface, dateTimeType)
	_ = r.RegisterType(reflect.TypeFor[time.Time]())

	return r
}

// Register binds name to rtype. It is idempotent for the same (name, type) pair.
func (r *Reflect) Register(name string, rtype reflect.Type) error {
	if rtype == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == rtype {
			return nil
		}

		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, loaded := r.m.LoadOrStore(name, rtype)
	if loaded && old.(reflect.Type) != rtype {
		return ErrConflictingRegistration
	}

	return nil
}

// RegisterType binds a defined type under its qualified name, the same name typedecl.FromGoType produces.
func (r *Reflect) RegisterType(rtype reflect.Type) error {
	if rtype == nil {
		return ErrNilType
	}

	return r.Register(typedecl.QualifiedName(rtype.PkgPath(), rtype.Name()), rtype)
}

// Lookup returns the type bound to name.
func (r *Reflect) Lookup(name string) (reflect.Type, bool) {
	v, ok := r.m.Load(name)
	if !ok {
		return nil, false
	}

	return v.(reflect.Type), true
}

func (r *Reflect) IsEnum(name string) bool {
	rtype, ok := r.Lookup(name)
	if !ok || rtype.Name() == "" || rtype.PkgPath() == "" {
		return false
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	}
}

func (r *Reflect) IsDate(name string) bool {
	if name == r.dateInterface {
		return true
	}

	rtype, ok := r.Lookup(name)
	return ok && ImplementsDateTime(rtype)
}
