package client

import "github.com/lalicorera/storefront/catalog"

// Credentials is the JSON body for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the JSON body for POST /auth/register.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User describes an account as the API returns it.
type User struct {
	ID    catalog.ID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  string     `json:"role,omitempty"`
}

// LoginResponse is returned from POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// meResponse is returned from GET /auth/me.
type meResponse struct {
	User User `json:"user"`
}

// ProductList is returned from GET /products.
type ProductList struct {
	Products      []catalog.Product `json:"products"`
	TotalPages    int               `json:"totalPages"`
	TotalProducts int               `json:"totalProducts"`
}

// productResponse is returned from GET /products/{id} and PUT /products/{id}.
type productResponse struct {
	Product catalog.Product `json:"product"`
}

// usersResponse is returned from GET /users.
type usersResponse struct {
	Users []User `json:"users"`
}

// userResponse is returned from GET /users/{id} and PUT /users/{id}.
type userResponse struct {
	User User `json:"user"`
}

// UserUpdate is the JSON body for PUT /users/{id}.
type UserUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
