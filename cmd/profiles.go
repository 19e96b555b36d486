package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
	"github.com/lehigh-university-libraries/marcwalk/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage output profiles",
	Long: `List, inspect and store output profiles.

Profiles pick which record kinds are kept, which fields JSON output carries,
the CSV columns per record kind, and the multi-value separator. Embedded
profiles ship with marcwalk; user profiles live in ~/.marcwalk/profiles/
and override an embedded profile of the same name.

Examples:
  marcwalk profiles list
  marcwalk profiles show summary
  marcwalk profiles save my-export.yaml
  marcwalk profiles delete my-export`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Resolve(args[0])
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var profilesSaveName string

var profilesSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Store a profile YAML file as a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := mapping.LoadProfile(args[0])
		if err != nil {
			return err
		}
		if profilesSaveName != "" {
			p.Name = profilesSaveName
		}
		if err := profile.Save(p); err != nil {
			return err
		}
		path, _ := profile.ProfilePath(p.Name)
		fmt.Printf("Saved profile %s to %s\n", p.Name, path)
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !profile.Exists(name) {
			return fmt.Errorf("profile %q not found", name)
		}
		if err := profile.Delete(name); err != nil {
			return err
		}
		fmt.Printf("Deleted profile: %s\n", name)
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesSaveCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)

	profilesSaveCmd.Flags().StringVar(&profilesSaveName, "name", "", "Store under this name instead of the file's")
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	registry, err := mapping.NewProfileRegistry()
	if err != nil {
		return err
	}
	user, err := profile.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tKINDS\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----\t-----------")

	for _, name := range registry.List() {
		p, _ := registry.Get(name)
		source := "embedded"
		if profile.Exists(name) {
			source = "user (overrides embedded)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.VersionedName(), source, kindList(p), helpers.TruncateText(p.Description, 50))
	}

	for _, name := range user {
		if _, embedded := registry.Get(name); embedded {
			continue
		}
		p, err := profile.Load(name)
		if err != nil {
			fmt.Fprintf(w, "%s\tuser\t?\terror loading\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\tuser\t%s\t%s\n", p.VersionedName(), kindList(p), helpers.TruncateText(p.Description, 50))
	}

	return w.Flush()
}

func kindList(p *mapping.Profile) string {
	if len(p.Kinds) == 0 {
		return "all"
	}
	out := ""
	for i, k := range p.Kinds {
		if i > 0 {
			out += ","
		}
		out += string(k)
	}
	return out
}
