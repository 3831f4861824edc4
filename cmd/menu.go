package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursecat/coursecat/pkg/catalog"
	"github.com/coursecat/coursecat/pkg/config"
	"github.com/coursecat/coursecat/pkg/paths"
)

func MenuCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive course catalog menu",
		Long:  `This command runs the interactive text menu: load a course file, display the sorted course list and search for individual courses.`,

		Run: func(cmd *cobra.Command, args []string) {
			initCore()

			cat := catalog.New(config.Delimiter())
			runMenu(cat, bufio.NewReader(os.Stdin), os.Stdout)
		},
	}

	return command
}

// runMenu drives the interactive loop. Input and output are parameters so the
// loop is testable without a terminal.
func runMenu(cat *catalog.Catalog, in *bufio.Reader, out io.Writer) {
	dataLoaded := false

	for {
		printMenu(out)

		switch readLine(in) {
		case "1":
			if menuLoad(cat, in, out) {
				dataLoaded = true
			}
		case "2":
			if !dataLoaded {
				fmt.Fprintln(out, "Please load data first before displaying courses.")
				continue
			}
			menuDisplay(cat, out)
		case "3":
			if !dataLoaded {
				fmt.Fprintln(out, "Please load data first before searching courses.")
				continue
			}
			menuSearch(cat, in, out)
		case "9":
			fmt.Fprintln(out, "Exiting application...")
			return
		default:
			fmt.Fprintln(out, "Invalid menu option. Please try again.")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "==================================")
	fmt.Fprintln(out, "     Welcome to ABC University    ")
	fmt.Fprintln(out, "==================================")
	fmt.Fprintln(out, "Please select a menu option:")
	fmt.Fprintln(out, "1) Load data to application")
	fmt.Fprintln(out, "2) Display course list (alphanumeric)")
	fmt.Fprintln(out, "3) Search for individual course")
	fmt.Fprintln(out, "9) Quit application")
	fmt.Fprintln(out, "----------------------------------")
	fmt.Fprint(out, "Enter your choice: ")
}

// menuLoad prompts for a file name and loads it, returning whether the load
// succeeded.
func menuLoad(cat *catalog.Catalog, in *bufio.Reader, out io.Writer) bool {
	cfg := config.Config.Catalog

	if files := paths.DataFiles(cfg.DataDirectory, cfg.DataExtensions); len(files) > 0 {
		fmt.Fprintln(out, "Available course files:")
		for _, f := range files {
			fmt.Fprintf(out, "  %s\n", f)
		}
	}

	fmt.Fprint(out, "Enter the name of the course data file: ")
	fileName := readLine(in)

	if err := cat.LoadFromFile(fileName); err != nil {
		fmt.Fprintf(out, "Failed to load file: %v\n", err)
		return false
	}

	fmt.Fprintf(out, "Successfully read file: %s\n", fileName)
	return true
}

// menuDisplay prints the sorted course list, narrowed to the configured id
// prefixes when any are set.
func menuDisplay(cat *catalog.Catalog, out io.Writer) {
	fmt.Fprintln(out, "-------- Course List --------")

	prefixes := config.Config.Catalog.ListPrefixes
	if len(prefixes) == 0 {
		for _, crs := range cat.AllSorted() {
			fmt.Fprintln(out, crs.String())
		}
		return
	}

	for _, crs := range cat.AllSorted() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(crs.ID, prefix) {
				fmt.Fprintln(out, crs.String())
				break
			}
		}
	}
}

func menuSearch(cat *catalog.Catalog, in *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "Search Categories:")
	fmt.Fprintln(out, "1) Course Name")
	fmt.Fprintln(out, "2) Course Title")
	fmt.Fprintln(out, "3) Prerequisite")
	fmt.Fprint(out, "Enter selection: ")

	var category catalog.Category
	switch readLine(in) {
	case "1":
		category = catalog.CategoryName
	case "2":
		category = catalog.CategoryTitle
	case "3":
		category = catalog.CategoryPrereq
	default:
		fmt.Fprintln(out, "Invalid selection")
		return
	}

	fmt.Fprint(out, "Enter search text: ")
	criteria := readLine(in)
	if criteria == "" {
		fmt.Fprintln(out, "Search criteria cannot be empty.")
		return
	}

	results := cat.Search(criteria, category)
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching courses found.")
		return
	}

	fmt.Fprintln(out, "-------- Course List --------")
	for _, crs := range results {
		fmt.Fprintln(out, crs.String())
	}
}

func readLine(in *bufio.Reader) string {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		// treat a closed input stream as quit
		return "9"
	}

	return strings.TrimSpace(line)
}
