package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	recur "github.com/arran4/golang-recur"
	"github.com/urfave/cli/v2"
)

func main() {
	repair := false

	repairFlag := cli.BoolFlag{
		Name:        "repair",
		Aliases:     []string{"r"},
		Usage:       "Remove repairable defects before reporting",
		Value:       repair,
		DefaultText: "false",
		Destination: &repair,
	}

	app := &cli.App{
		Name:  "recurcheck",
		Usage: "Validate and normalize iCalendar recurrence rules",
		Commands: []*cli.Command{
			{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Validate rules given as arguments or on stdin",
				Flags:   []cli.Flag{&repairFlag},
				Action: func(c *cli.Context) error {
					rules, err := ruleArgs(c)
					if err != nil {
						return err
					}
					failed := false
					for _, rule := range rules {
						r, err := recur.ParseRecur(rule)
						if err != nil {
							fmt.Printf("%s: %v\n", rule, err)
							failed = true
							continue
						}
						result := r.Validate(repair)
						for _, d := range result.Diagnostics {
							fmt.Printf("%s: [%d] %s\n", rule, d.Level, d.Message)
						}
						if result.RequiresRemoval {
							fmt.Printf("%s: beyond repair, remove the property\n", rule)
						}
						if repair && !result.RequiresRemoval {
							fmt.Printf("%s: repaired to %s\n", rule, r.GetValue())
						}
						if !result.Ok() {
							failed = true
						}
					}
					if failed {
						return cli.Exit("one or more rules failed validation", 1)
					}
					return nil
				},
			}, {
				Name:    "fmt",
				Aliases: []string{"f"},
				Usage:   "Print rules in their canonical form",
				Action: func(c *cli.Context) error {
					rules, err := ruleArgs(c)
					if err != nil {
						return err
					}
					for _, rule := range rules {
						r, err := recur.ParseRecur(rule)
						if err != nil {
							return err
						}
						fmt.Println(r.GetValue())
					}
					return nil
				},
			}, {
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Print rules in their interchange form",
				Action: func(c *cli.Context) error {
					rules, err := ruleArgs(c)
					if err != nil {
						return err
					}
					enc := json.NewEncoder(os.Stdout)
					for _, rule := range rules {
						r, err := recur.ParseRecur(rule)
						if err != nil {
							return err
						}
						if err := enc.Encode(r); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ruleArgs returns the positional arguments, or one rule per stdin line when
// there are none.
func ruleArgs(c *cli.Context) ([]string, error) {
	if c.Args().Len() > 0 {
		return c.Args().Slice(), nil
	}
	var rules []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			rules = append(rules, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
