// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is the structure of one loaded page: everything the interaction layer
// may enhance. A page is rebuilt from scratch on every load.
type Page struct {
	Name    string
	Title   string
	Forms   []*Form
	Tables  []*Table
	Flash   []Flash
	Anchors []string
	Actions []Action
	HasMenu bool
}

// ActionKind is what a page button does when pressed.
type ActionKind string

const (
	ActionCopy     ActionKind = "copy"
	ActionDownload ActionKind = "download"
	ActionAnchor   ActionKind = "anchor"
)

// Action is a page button bound to a helper: copying Value, downloading the
// file at Value as Filename, or scrolling to the anchor named by Value.
type Action struct {
	Label    string
	Kind     ActionKind
	Value    string
	Filename string
}

// FormByID returns the page form with the given id.
func (p *Page) FormByID(id string) (*Form, bool) {
	for _, f := range p.Forms {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// TableByID returns the page table with the given id.
func (p *Page) TableByID(id string) (*Table, bool) {
	for _, t := range p.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
