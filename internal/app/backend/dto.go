package backend

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Employee struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Role        string   `json:"role"`
	CompanyID   *int64   `json:"company_id"`
	Permissions []string `json:"permissions"`
}

type Permission struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AssignedPermission links an employee to a catalog permission by id.
type AssignedPermission struct {
	ID           int64 `json:"id"`
	PermissionID int64 `json:"permission_id"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// Request is a raw call used by the resource proxy.
type Request struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   []byte
}

type Response struct {
	Status int
	Body   []byte
}
