package users

type Repo interface {
	GetByUsername(username string) (*User, error)
	GetByID(id int) (*User, error)
	List() []*User
}
