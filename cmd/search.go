package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursecat/coursecat/pkg/catalog"
	"github.com/coursecat/coursecat/pkg/config"
	"github.com/coursecat/coursecat/pkg/logger"
)

func SearchCommand() *cobra.Command {
	var searchCategory string

	command := &cobra.Command{
		Use:   "search [FILE] [CRITERIA]",
		Short: "Load a course file and search it",
		Long:  `This command loads the given course file and prints every course matching the criteria under the chosen category (name, title or prereq).`,

		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			initCore()

			log := logger.GetLogger("search")

			category, err := catalog.ParseCategory(searchCategory)
			if err != nil {
				log.WithError(err).Fatal("Failed parsing search category")
			}

			cat := catalog.New(config.Delimiter())
			if err := cat.LoadFromFile(args[0]); err != nil {
				log.WithError(err).Fatal("Failed loading course file")
			}

			results := cat.Search(args[1], category)
			if len(results) == 0 {
				fmt.Println("No matching courses found.")
				return
			}

			fmt.Println("-------- Course List --------")
			for _, crs := range results {
				fmt.Println(crs.String())
			}
		},
	}

	command.Flags().StringVar(&searchCategory, "category", "name", "Search category: name, title or prereq")

	return command
}
