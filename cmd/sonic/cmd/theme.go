package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sonicdash/sonic/internal/store"
	"github.com/sonicdash/sonic/internal/theme"
	"github.com/sonicdash/sonic/internal/themeswitch"
)

var (
	themeFromStore bool
	themeServerURL string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and switch theme profiles",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadThemeSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		ids := cfg.ProfileIDs()
		if len(ids) == 0 {
			fmt.Fprintln(out, "no theme profiles configured")
			return nil
		}
		for _, id := range ids {
			marker := " "
			if id == cfg.SelectedProfile {
				marker = "*"
			}
			note := ""
			if p, _ := cfg.Profile(id); p.IsEmpty() {
				note = " (empty)"
			}
			fmt.Fprintf(out, "%s %s%s\n", marker, id, note)
		}
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show the resolved style of every region",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadThemeSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		profileID := cfg.SelectedProfile
		if len(args) == 1 {
			profileID = args[0]
		}
		res := theme.ResolveProfile(&cfg, profileID)
		renderSwatches(cmd.OutOrStdout(), swatchTitle(res.Profile, res.Found), swatchRowsFromResolved(res), colorEnabled(cmd.OutOrStdout()))
		return nil
	},
}

var themeLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report theme problems that rendering would silently mask",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadThemeSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		warnings := cfg.Lint()
		out := cmd.OutOrStdout()
		for _, w := range warnings {
			fmt.Fprintf(out, "- %s\n", w)
		}
		if len(warnings) > 0 {
			return fmt.Errorf("%d theme problem(s) found", len(warnings))
		}
		fmt.Fprintln(out, "theme config OK")
		return nil
	},
}

var themeUseCmd = &cobra.Command{
	Use:   "use <profile>",
	Short: "Switch the running dashboard to a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemeUse(cmd.Context(), cmd.OutOrStdout(), themeServerURL, args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{themeListCmd, themeShowCmd, themeLintCmd} {
		c.Flags().BoolVar(&themeFromStore, "stored", false, "read the snapshot persisted in the database instead of the config file")
	}
	themeUseCmd.Flags().StringVar(&themeServerURL, "server", "http://localhost:5001", "dashboard base URL")
	themeCmd.AddCommand(themeListCmd, themeShowCmd, themeLintCmd, themeUseCmd)
}

// loadThemeSnapshot returns the theme from the config file, or the stored
// snapshot with --stored.
func loadThemeSnapshot(ctx context.Context) (theme.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return theme.Config{}, err
	}
	if !themeFromStore {
		return cfg.Theme, nil
	}
	db, err := store.Open(cfg.Server.DBPath)
	if err != nil {
		return theme.Config{}, err
	}
	defer db.Close()
	stored, ok, err := db.LoadThemeConfig(ctx)
	if err != nil {
		return theme.Config{}, err
	}
	if !ok {
		slog.Warn("no stored theme snapshot, using config file", "db", cfg.Server.DBPath)
		return cfg.Theme, nil
	}
	return stored, nil
}

type remoteProfiles struct {
	SelectedProfile string `json:"selected_profile"`
	Profiles        []struct {
		ID string `json:"id"`
	} `json:"profiles"`
}

type remoteTheme struct {
	Profile string `json:"profile"`
	Found   bool   `json:"found"`
	Regions []struct {
		Region  theme.Region `json:"region"`
		Kind    theme.Kind   `json:"kind"`
		Color   string       `json:"color"`
		URL     string       `json:"url"`
		Default bool         `json:"default"`
	} `json:"regions"`
}

func runThemeUse(ctx context.Context, out io.Writer, baseURL, profileID string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	client := &http.Client{Timeout: themeswitch.DefaultTimeout + 5*time.Second}

	var profiles remoteProfiles
	if err := getJSON(ctx, client, baseURL+"/api/v1/theme/profiles", &profiles); err != nil {
		return err
	}
	ids := make([]string, 0, len(profiles.Profiles))
	for _, p := range profiles.Profiles {
		ids = append(ids, p.ID)
	}

	c := themeswitch.New(themeswitch.Options{
		BaseURL: baseURL,
		Client:  client,
		Reload: func(ctx context.Context, profile string) error {
			var view remoteTheme
			if err := getJSON(ctx, client, baseURL+"/api/v1/theme", &view); err != nil {
				return err
			}
			rows := make([]swatchRow, 0, len(view.Regions))
			for _, r := range view.Regions {
				value := r.Color
				if r.Kind == theme.KindImage {
					value = r.URL
				}
				rows = append(rows, swatchRow{Region: r.Region, Kind: r.Kind, Value: value, Default: r.Default})
			}
			renderSwatches(out, swatchTitle(view.Profile, view.Found), rows, colorEnabled(out))
			return nil
		},
		Notify: func(err error) {
			slog.Error("theme switch failed", "profile", profileID, "error", err)
		},
	})
	c.Init(ids, profiles.SelectedProfile)

	if profileID == profiles.SelectedProfile {
		fmt.Fprintf(out, "%s is already the active profile\n", profileID)
		return nil
	}
	return c.SelectProfile(ctx, profileID)
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("get %s: HTTP %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
