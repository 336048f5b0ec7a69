package main

import (
	"context"
	"io"

	"github.com/fwojciec/fragmen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Fragments  fragmen.FragmentService
	Installer  fragmen.Installer
	Config     fragmen.ConfigService
	ConfigPath string
	Prompter   fragmen.ConfigPrompter
	Search     fragmen.SearchService
	Renderer   fragmen.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Registry string `help:"Registry directory" env:"FRAGMEN_REGISTRY" type:"path"`
	Config   string `help:"Config file" env:"FRAGMEN_CONFIG" default:"fragmen.json"`
	Debug    bool   `help:"Log service calls to stderr"`

	Init       InitCmd       `cmd:"" help:"Write fragmen.json for this project"`
	Add        AddCmd        `cmd:"" help:"Copy fragments into this project"`
	List       ListCmd       `cmd:"" help:"List fragments in the registry"`
	Categories CategoriesCmd `cmd:"" help:"List registry categories"`
	Show       ShowCmd       `cmd:"" help:"Show documentation for a fragment"`
	Search     SearchCmd     `cmd:"" help:"Search fragments by keyword"`
	Related    RelatedCmd    `cmd:"" help:"List fragments related to a fragment"`
	Status     StatusCmd     `cmd:"" help:"Compare installed fragments with the registry"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct{}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Slugs []string `arg:"" name:"slug" help:"Fragment slugs (category/name)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Pattern  string `arg:"" optional:"" help:"Glob matched against slugs, e.g. array/*"`
	Category string `short:"c" help:"Only list this category"`
	Tag      string `short:"t" help:"Only list fragments with this tag"`
	New      bool   `short:"n" help:"Newest fragments first"`
	Limit    int    `short:"l" help:"Maximum number of fragments"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug  string `arg:"" help:"Fragment slug (category/name)"`
	Raw   bool   `help:"Print the source only"`
	Style string `default:"auto" enum:"auto,notty,dark,light" help:"Rendering style"`
	Width int    `default:"80" help:"Wrap width"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    []string `arg:"" help:"Search terms"`
	Category string   `short:"c" help:"Only search this category"`
	Limit    int      `short:"l" default:"10" help:"Maximum number of results"`
}

// RelatedCmd is the "related" subcommand.
type RelatedCmd struct {
	Slug  string `arg:"" help:"Fragment slug (category/name)"`
	Limit int    `short:"l" default:"5" help:"Maximum number of results"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
