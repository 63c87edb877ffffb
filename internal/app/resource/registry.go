package resource

import (
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/samber/lo"
)

// Family selects which authorization strategy guards a resource.
type Family int

const (
	FamilyFlatList Family = iota
	FamilyMatrix
)

type Resource struct {
	Name        string             `json:"name"`
	BackendPath string             `json:"-"`
	Subject     permission.Subject `json:"subject"`
	Family      Family             `json:"-"`
	// Noun names the resource in flat permission strings, e.g. "branch" in "create_branch".
	Noun string `json:"-"`
	// ReadOnly resources reject create, update and delete before reaching the backend.
	ReadOnly bool `json:"read_only"`
}

func flat(name, backendPath, noun string) Resource {
	return Resource{Name: name, BackendPath: backendPath, Subject: permission.Subject(name), Family: FamilyFlatList, Noun: noun}
}

func matrix(subject permission.Subject, backendPath string) Resource {
	return Resource{Name: string(subject), BackendPath: backendPath, Subject: subject, Family: FamilyMatrix}
}

func readOnly(r Resource) Resource {
	r.ReadOnly = true
	return r
}

var defaultResources = []Resource{
	flat("branches", "/branches", "branch"),
	flat("categories", "/categories", "category"),
	flat("companies", "/companies", "company"),
	flat("discounts", "/discounts", "discount"),
	flat("employees", "/employees", "employee"),
	flat("halls", "/halls", "hall"),
	flat("permissions", "/permissions", "permission"),
	flat("role-permissions", "/role-permissions", "role_permission"),
	flat("users", "/users", "user"),
	flat("venues", "/venues", "venue"),
	flat("seats", "/seats", "seat"),
	flat("seat-types", "/seat-types", "seat_type"),
	flat("tickets", "/tickets", "ticket"),
	flat("orders", "/orders", "order"),
	flat("products", "/products", "product"),
	flat("product-categories", "/product-categories", "product_category"),
	flat("promocodes", "/promocodes", "promocode"),
	flat("banners", "/banners", "banner"),
	flat("news", "/news", "news"),
	flat("faq", "/faq", "faq"),
	flat("cities", "/cities", "city"),
	flat("countries", "/countries", "country"),
	flat("languages", "/languages", "language"),
	flat("payment-methods", "/payment-methods", "payment_method"),
	matrix(permission.SubjectAgeRestrictions, "/age-restrictions"),
	matrix(permission.SubjectEvents, "/events"),
	matrix(permission.SubjectGenres, "/genres"),
	matrix(permission.SubjectMedia, "/media"),
	matrix(permission.SubjectMovies, "/movies"),
	readOnly(matrix(permission.SubjectReports, "/reports")),
	matrix(permission.SubjectTemplates, "/templates"),
	matrix(permission.SubjectTransactions, "/transactions"),
}

// Registry indexes resources by name.
type Registry struct {
	resources []Resource
	byName    map[string]Resource
}

func NewRegistry(resources []Resource) *Registry {
	return &Registry{
		resources: resources,
		byName:    lo.KeyBy(resources, func(r Resource) string { return r.Name }),
	}
}

// DefaultRegistry returns the dashboard's resource families.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultResources)
}

func (r *Registry) Lookup(name string) (Resource, bool) {
	res, ok := r.byName[name]
	return res, ok
}

func (r *Registry) All() []Resource {
	return r.resources
}

// Policy builds the authorizer that guards the registry: flat permission strings for
// FamilyFlatList, the static role matrix for FamilyMatrix.
func (r *Registry) Policy() *permission.Policy {
	nouns := lo.FilterSliceToMap(r.resources, func(res Resource) (permission.Subject, string, bool) {
		return res.Subject, res.Noun, res.Family == FamilyFlatList
	})
	flatList := permission.NewFlatList(nouns)
	roleMatrix := permission.NewMatrix(nil)

	policy := permission.NewPolicy()
	for _, res := range r.resources {
		switch res.Family {
		case FamilyFlatList:
			policy.Use(flatList, res.Subject)
		case FamilyMatrix:
			policy.Use(roleMatrix, res.Subject)
		}
	}
	return policy
}
