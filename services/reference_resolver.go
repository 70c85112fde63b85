package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ReferenceResolver turns human-readable references (ids, category names,
// room codes, owner emails or "first last" names) into foreign keys.
// Methods return the resolved id, or a failure reason when the reference
// is mandatory and cannot be satisfied. An id, when supplied, always wins
// over a natural key.
type ReferenceResolver struct {
	store ImportStore
}

func NewReferenceResolver(store ImportStore) *ReferenceResolver {
	return &ReferenceResolver{store: store}
}

// Category resolves categoryId/categoryName. A name miss is not a
// failure: assets may reference categories that do not exist yet, and
// the two-phase pre-validation pass reports those separately.
func (r *ReferenceResolver) Category(ctx context.Context, idVal, nameVal any) (*uint, string, error) {
	if id, ok := referenceID(idVal); ok {
		category, err := r.store.CategoryByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		if category == nil {
			return nil, fmt.Sprintf("no category with id %d", id), nil
		}
		return &category.ID, "", nil
	}

	name := referenceString(nameVal)
	if name == "" {
		return nil, "", nil
	}
	category, err := r.store.CategoryByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if category == nil {
		return nil, "", nil
	}
	return &category.ID, "", nil
}

// Room resolves roomId/roomCode with the same miss semantics as Category.
func (r *ReferenceResolver) Room(ctx context.Context, idVal, codeVal any) (*uint, string, error) {
	if id, ok := referenceID(idVal); ok {
		room, err := r.store.RoomByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		if room == nil {
			return nil, fmt.Sprintf("no room with id %d", id), nil
		}
		return &room.ID, "", nil
	}

	code := referenceString(codeVal)
	if code == "" {
		return nil, "", nil
	}
	room, err := r.store.RoomByCode(ctx, code)
	if err != nil {
		return nil, "", err
	}
	if room == nil {
		return nil, "", nil
	}
	return &room.ID, "", nil
}

// Owner resolves ownerId/ownerEmail/ownerName. Unlike category and room,
// an explicitly named owner that cannot be found is always a failure.
func (r *ReferenceResolver) Owner(ctx context.Context, idVal, emailVal, nameVal any) (*uint, string, error) {
	if id, ok := referenceID(idVal); ok {
		owner, err := r.store.UserByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
		if owner == nil {
			return nil, fmt.Sprintf("no owner with id %d", id), nil
		}
		return &owner.ID, "", nil
	}

	if email := referenceString(emailVal); email != "" {
		owner, err := r.store.UserByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		if owner == nil {
			return nil, fmt.Sprintf("owner email %q not found", email), nil
		}
		return &owner.ID, "", nil
	}

	if name := referenceString(nameVal); name != "" {
		parts := strings.Fields(name)
		if len(parts) < 2 {
			return nil, `owner name must be "first last"`, nil
		}
		firstname := parts[0]
		lastname := strings.Join(parts[1:], " ")
		owner, err := r.store.UserByName(ctx, firstname, lastname)
		if err != nil {
			return nil, "", err
		}
		if owner == nil {
			return nil, fmt.Sprintf("owner %q not found", name), nil
		}
		return &owner.ID, "", nil
	}

	return nil, "", nil
}

// referenceID interprets a cell as a primary key. Empty values and the
// literal string "null" mean no id was supplied; a malformed id is
// ignored the same way so the natural key still gets a chance.
func referenceID(value any) (uint, bool) {
	switch v := value.(type) {
	case float64:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "null") {
			return 0, false
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}

func referenceString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
