package tui

import (
	"slices"

	"github.com/MKhiriev/go-bus-pass/models"
)

// PageBuilder returns a fresh model of a page for one load.
type PageBuilder func() *models.Page

// Catalog is the set of pages reachable from the main menu, in menu order.
type Catalog struct {
	names    []string
	builders map[string]PageBuilder
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{builders: make(map[string]PageBuilder)}
}

// Register adds or replaces the page name.
func (c *Catalog) Register(name string, build PageBuilder) {
	if _, exists := c.builders[name]; !exists {
		c.names = append(c.names, name)
	}
	c.builders[name] = build
}

// Names returns the page names in menu order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Build returns a new model of page name.
func (c *Catalog) Build(name string) (*models.Page, bool) {
	build, ok := c.builders[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Title returns the title of page name, or name itself.
func (c *Catalog) Title(name string) string {
	if p, ok := c.Build(name); ok && p.Title != "" {
		return p.Title
	}
	return name
}

// DefaultCatalog returns the pages of the bus pass system.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register("index", indexPage)
	c.Register("register", studentRegisterPage)
	c.Register("student_login", studentLoginPage)
	c.Register("student_dashboard", studentDashboardPage)
	c.Register("admin_register", adminRegisterPage)
	c.Register("admin_login", adminLoginPage)
	c.Register("admin_dashboard", adminDashboardPage)
	return c
}

func indexPage() *models.Page {
	return &models.Page{
		Name:    "index",
		Title:   "Bus Pass System",
		Anchors: []string{"features", "how-it-works"},
		Actions: []models.Action{
			{Label: "Features", Kind: models.ActionAnchor, Value: "#features"},
			{Label: "How it works", Kind: models.ActionAnchor, Value: "#how-it-works"},
		},
		HasMenu: true,
	}
}

func studentRegisterPage() *models.Page {
	return &models.Page{
		Name:  "register",
		Title: "Student Registration",
		Forms: []*models.Form{{
			ID:     "register",
			Action: "student_dashboard",
			Fields: []*models.Field{
				{ID: "reg_no", Name: models.FieldRegNo, Label: "Registration Number", Required: true},
				{ID: "name", Name: "name", Label: "Full Name", Required: true},
				{ID: "department", Name: "department", Label: "Department", Required: true},
				{ID: "year", Name: "year", Label: "Year", Required: true},
				{ID: "password", Name: models.FieldPassword, Label: "Password", Required: true, Secret: true},
			},
		}},
		HasMenu: true,
	}
}

func studentLoginPage() *models.Page {
	return &models.Page{
		Name:  "student_login",
		Title: "Student Login",
		Forms: []*models.Form{{
			ID:     "student_login",
			Action: "student_dashboard",
			Fields: []*models.Field{
				{ID: "reg_no", Name: models.FieldRegNo, Label: "Registration Number", Required: true},
				{ID: "password", Name: models.FieldPassword, Label: "Password", Required: true, Secret: true},
			},
		}},
		HasMenu: true,
	}
}

func studentDashboardPage() *models.Page {
	return &models.Page{
		Name:  "student_dashboard",
		Title: "My Bus Pass",
		Flash: []models.Flash{{Message: "Registration successful! Your bus pass has been generated.", Kind: models.NotificationSuccess}},
		Actions: []models.Action{
			{Label: "Copy registration number", Kind: models.ActionCopy, Value: "21CS042"},
			{Label: "Download QR code", Kind: models.ActionDownload, Value: "/static/qr_codes/21CS042.png", Filename: "bus_pass_21CS042.png"},
		},
		HasMenu: true,
	}
}

func adminRegisterPage() *models.Page {
	return &models.Page{
		Name:  "admin_register",
		Title: "Admin Registration",
		Forms: []*models.Form{{
			ID:     "admin_register",
			Action: "admin_login",
			Fields: []*models.Field{
				{ID: "username", Name: "username", Label: "Username", Required: true},
				{ID: "password", Name: models.FieldPassword, Label: "Password", Required: true, Secret: true},
				{ID: "confirm_password", Name: "confirm_password", Label: "Confirm Password", Required: true, Secret: true},
				{ID: "admin_code", Name: "admin_code", Label: "Admin Registration Code", Required: true},
			},
		}},
		HasMenu: true,
	}
}

func adminLoginPage() *models.Page {
	return &models.Page{
		Name:  "admin_login",
		Title: "Admin Login",
		Flash: []models.Flash{{Message: "Admin registration successful! You can now login.", Kind: models.NotificationSuccess}},
		Forms: []*models.Form{{
			ID:     "admin_login",
			Action: "admin_dashboard",
			Fields: []*models.Field{
				{ID: "username", Name: "username", Label: "Username", Required: true},
				{ID: "password", Name: models.FieldPassword, Label: "Password", Required: true, Secret: true},
			},
		}},
		HasMenu: true,
	}
}

func adminDashboardPage() *models.Page {
	return &models.Page{
		Name:  "admin_dashboard",
		Title: "Admin Dashboard",
		Tables: []*models.Table{{
			ID: "students",
			Headers: []models.Header{
				{Label: "Reg No", Sortable: true},
				{Label: "Name", Sortable: true},
				{Label: "Department", Sortable: true},
				{Label: "Year", Sortable: true},
				{Label: "Status"},
			},
			Rows: []models.Row{
				{Key: "1", Cells: []string{"21CS042", "Ann Lee", "Computer Science", "3"}},
				{Key: "2", Cells: []string{"22ME007", "Bob Stone", "Mechanical", "2", "Revoked"}},
				{Key: "3", Cells: []string{"20EE113", "Émile Roux", "Electrical", "4", "Active"}},
				{Key: "4", Cells: []string{"23CE021", "alice Park", "Civil", "1", "Active"}},
			},
		}},
		HasMenu: true,
	}
}
