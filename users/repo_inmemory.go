package users

import "fmt"

// InMemoryUserRepo is a read-only in-memory implementation of Repo.
// The directory is fixed at construction; lookups need no locking.
type InMemoryUserRepo struct {
	byUsername map[string]*User
	byID       map[int]*User
	ordered    []*User
}

// NewInMemoryUserRepo creates a user repository from a seed list.
func NewInMemoryUserRepo(seed []*User) (*InMemoryUserRepo, error) {
	r := &InMemoryUserRepo{
		byUsername: make(map[string]*User),
		byID:       make(map[int]*User),
	}
	for _, u := range seed {
		if u.Username == "" {
			return nil, fmt.Errorf("seed user %d has no username", u.ID)
		}
		if _, exists := r.byUsername[u.Username]; exists {
			return nil, fmt.Errorf("duplicate seed username %q", u.Username)
		}
		if _, exists := r.byID[u.ID]; exists {
			return nil, fmt.Errorf("duplicate seed user ID %d", u.ID)
		}
		r.byUsername[u.Username] = u
		r.byID[u.ID] = u
		r.ordered = append(r.ordered, u)
	}
	return r, nil
}

func (r *InMemoryUserRepo) GetByUsername(username string) (*User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %q not found", username)
	}
	return u, nil
}

func (r *InMemoryUserRepo) GetByID(id int) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return u, nil
}

func (r *InMemoryUserRepo) List() []*User {
	out := make([]*User, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// SeedUsers returns the demo user directory. Password hashes are generated
// at startup rather than shipped as literals so the hashing cost stays in
// sync with bcrypt.DefaultCost.
//
// Credentials: admin/admin123 (admin), user1/user123 (user).
func SeedUsers() []*User {
	return []*User{
		{ID: 1, Username: "admin", Email: "admin@test.com", PasswordHash: mustHash("admin123"), Role: RoleAdmin},
		{ID: 2, Username: "user1", Email: "user1@test.com", PasswordHash: mustHash("user123"), Role: RoleUser},
	}
}

func mustHash(password string) string {
	hash, err := HashPassword(password)
	if err != nil {
		panic("failed to hash seed password: " + err.Error())
	}
	return hash
}
