package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coursecat/coursecat/pkg/catalog"
	"github.com/coursecat/coursecat/pkg/config"
	"github.com/coursecat/coursecat/pkg/course"
	"github.com/coursecat/coursecat/pkg/expression"
	"github.com/coursecat/coursecat/pkg/logger"
)

func ListCommand() *cobra.Command {
	var (
		listPrefix  string
		listFilters []string
	)

	command := &cobra.Command{
		Use:   "list [FILE]",
		Short: "Load a course file and print the sorted course list",
		Long:  `This command loads the given course file and prints every course in ascending course id order, optionally narrowed by an id prefix and/or filter expressions.`,

		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initCore()

			log := logger.GetLogger("list")

			cat := catalog.New(config.Delimiter())
			if err := cat.LoadFromFile(args[0]); err != nil {
				log.WithError(err).Fatal("Failed loading course file")
			}

			courses := cat.AllSorted()
			if listPrefix != "" {
				courses = cat.FilterByPrefix(listPrefix)
			}

			if len(listFilters) > 0 {
				compiled, err := expression.Compile(listFilters)
				if err != nil {
					log.WithError(err).Fatal("Failed compiling filter expressions")
				}

				filtered := make([]*course.Course, 0, len(courses))
				for _, crs := range courses {
					match, err := expression.CheckCourseAllMatch(crs, compiled)
					if err != nil {
						log.WithError(err).Fatalf("Failed checking course: %s", crs.ID)
					}

					if match {
						filtered = append(filtered, crs)
					}
				}

				courses = filtered
			}

			fmt.Println("-------- Course List --------")
			for _, crs := range courses {
				fmt.Println(crs.String())
			}

			log.Infof("Listed %s of %s courses", humanize.Comma(int64(len(courses))),
				humanize.Comma(int64(cat.Length())))
		},
	}

	command.Flags().StringVar(&listPrefix, "prefix", "", "Only list courses whose id starts with this prefix")
	command.Flags().StringArrayVar(&listFilters, "filter", nil, "Filter expression, repeatable; all must match")

	return command
}
