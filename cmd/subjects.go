package main

import (
	"context"
	"fmt"
	"os"
	"privacymon/internal/config"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// subjectRecord is one entry of a subjects file. The single-value fields are
// accepted for files exported from older tools and are merged into the lists.
type subjectRecord struct {
	domain.Subject

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// parseSubjects decodes a YAML (or JSON) list of subjects.
func parseSubjects(b []byte) ([]domain.Subject, error) {
	var records []subjectRecord
	if err := yaml.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("could not decode subjects: %w", err)
	}

	subjects := make([]domain.Subject, 0, len(records))
	for i, r := range records {
		s := r.Subject
		if s.Name == (domain.PersonName{}) {
			s.Name = domain.ParseLegacyName(r.FullName)
		}
		s.Emails = domain.MergeUnique([]string{r.Email}, s.Emails)
		s.PhoneNumbers = domain.MergeUnique([]string{r.Phone}, s.PhoneNumbers)
		s.Addresses = domain.MergeUnique([]string{r.Address}, s.Addresses)

		if s.Name == (domain.PersonName{}) && len(s.Emails) == 0 {
			return nil, fmt.Errorf("subject %d has neither a name nor an email", i+1)
		}
		subjects = append(subjects, s)
	}

	return subjects, nil
}

func subjectsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manages monitored subjects",
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Imports subjects from a YAML file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")

			b, err := os.ReadFile(path)
			if err != nil {
				logger.Fatal(ctx, "could not read subjects file", zap.Error(err))
			}
			subjects, err := parseSubjects(b)
			if err != nil {
				logger.Fatal(ctx, "invalid subjects file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreSubjects(ctx, subjects...)
			if err != nil {
				logger.Error(ctx, "could not store subjects", zap.Error(err))

				return
			}

			for _, s := range stored {
				fmt.Printf("%s\t%s\n", s.ID, s.DisplayName()) //nolint: forbidigo
			}
		},
	}
	importCmd.Flags().StringP("file", "f", "subjects.yaml", "Subjects file")

	cmd.AddCommand(importCmd)

	return cmd
}
