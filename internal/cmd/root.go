// Package cmd provides the CLI for gnomefavs.
package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/wethinkt/gnomefavs/internal/cli"
	"github.com/wethinkt/gnomefavs/internal/config"
	"github.com/wethinkt/gnomefavs/internal/debuglog"
	"github.com/wethinkt/gnomefavs/internal/favs"
	"github.com/wethinkt/gnomefavs/internal/gsettings"
	"github.com/wethinkt/gnomefavs/internal/i18n"
	"github.com/wethinkt/gnomefavs/internal/version"
)

// errUsage marks argument shapes that print help instead of failing.
var errUsage = errors.New("bad usage")

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	list    bool
	save    string
	load    string
	remove  string
	logPath string
	verbose bool

	newBridge func() gsettings.Bridge
}

// NewRootCmd builds the gnomefavs command. newBridge is called only by
// actions that talk to gsettings.
func NewRootCmd(newBridge func() gsettings.Bridge) *cobra.Command {
	opts := &rootOptions{newBridge: newBridge}

	rootCmd := &cobra.Command{
		Use:   "gnomefavs [--list | -s|--save NAME | -l|--load NAME | -r|--remove NAME]",
		Short: i18n.T("cmd.root.short", "Save and restore GNOME Shell favorite apps presets"),
		Long: i18n.T("cmd.root.long", `gnomefavs manages presets of the GNOME Shell favorite apps (the dash).

Presets are stored in ~/.config/gnomefavs/gnomefavs.json.
If no options are provided, this help message is printed.`),
		Example: `  gnomefavs --list            # List saved presets
  gnomefavs --save work       # Save the current favorites as "work"
  gnomefavs --load work       # Restore the "work" favorites
  gnomefavs --remove work     # Delete the "work" preset`,
		Version:       version.Get(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: opts.run,
	}

	// Unknown flags and flags missing their NAME are usage mistakes, not
	// failures: show help and exit 0.
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		debuglog.Log.Debug("flag error", "err", err)
		return c.Help()
	})

	f := rootCmd.Flags()
	f.BoolVar(&opts.list, "list", false, i18n.T("cmd.flag.list", "list all the available presets"))
	f.StringVarP(&opts.save, "save", "s", "", i18n.T("cmd.flag.save", "save the current GNOME favorites as a preset with the given name"))
	f.StringVarP(&opts.load, "load", "l", "", i18n.T("cmd.flag.load", "load the preset with the given name"))
	f.StringVarP(&opts.remove, "remove", "r", "", i18n.T("cmd.flag.remove", "remove the preset with the given name"))
	f.StringVar(&opts.logPath, "log", "", i18n.T("cmd.flag.log", "append a debug log to this file"))
	f.BoolVarP(&opts.verbose, "verbose", "v", false, i18n.T("cmd.flag.verbose", "write a debug log to stderr"))
	f.SortFlags = false

	return rootCmd
}

// Execute runs gnomefavs against the real gsettings binary.
func Execute(ctx context.Context) error {
	i18n.Init(i18n.ResolveLocale())
	rootCmd := NewRootCmd(func() gsettings.Bridge { return gsettings.NewClient() })
	return rootCmd.ExecuteContext(ctx)
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	if err := o.setupLogging(cmd); err != nil {
		return err
	}
	defer debuglog.Log.Close()

	action, name, err := o.action(cmd)
	if err != nil {
		debuglog.Log.Debug("printing help", "args", args)
		return cmd.Help()
	}
	debuglog.Log.Debug("dispatch", "action", action, "name", name)

	paths, err := config.FromEnv()
	if err != nil {
		return err
	}
	out := cli.NewPrinter(cmd.OutOrStdout())
	ctx := cmd.Context()

	switch action {
	case "list":
		names, err := favs.NewManager(paths, nil).List()
		if err != nil {
			return err
		}
		out.Names(names)
		return nil

	case "save":
		if err := favs.NewManager(paths, o.newBridge()).Save(ctx, name); err != nil {
			return err
		}
		out.Done(i18n.T("cmd.save.done", "Saved preset: %s"), name)

	case "load":
		if err := favs.NewManager(paths, o.newBridge()).Load(ctx, name); err != nil {
			return err
		}
		out.Done(i18n.T("cmd.load.done", "Loaded preset: %s"), name)

	case "remove":
		if err := favs.NewManager(paths, nil).Remove(name); err != nil {
			return err
		}
		out.Done(i18n.T("cmd.remove.done", "Removed preset: %s"), name)
	}
	return nil
}

// action resolves the flags to exactly one action. Zero or several actions,
// or an action with an empty NAME, is errUsage.
func (o *rootOptions) action(cmd *cobra.Command) (string, string, error) {
	type candidate struct {
		action, name string
		set          bool
	}
	f := cmd.Flags()
	candidates := []candidate{
		{"list", "", o.list},
		{"save", o.save, f.Changed("save")},
		{"load", o.load, f.Changed("load")},
		{"remove", o.remove, f.Changed("remove")},
	}

	var picked *candidate
	for i := range candidates {
		if !candidates[i].set {
			continue
		}
		if picked != nil {
			return "", "", errUsage
		}
		picked = &candidates[i]
	}

	if picked == nil {
		return "", "", errUsage
	}
	if picked.action != "list" && picked.name == "" {
		return "", "", errUsage
	}
	return picked.action, picked.name, nil
}

func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	switch {
	case o.logPath != "":
		return debuglog.Init(o.logPath)
	case o.verbose:
		debuglog.Log.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}
