// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errEmptyTitle = errors.New("task title is required")

type addOptions struct {
	description string
	url         string
	priority    string
	list        string
	tags        []string
	due         string
}

func (r *root) newAddCommand() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add a new task",
		Long: `Add a new task. The words of the title do not need quoting.

The due date accepts YYYY-MM-DD or natural language such as "tomorrow" or
"next friday"; the task is due at the end of that day.`,
		Example: `  taskkeeper add buy milk
  taskkeeper add "renew passport" --due "next friday" --priority high --tag errands`,
		GroupID: groupTasks,
		Args:    cobra.MinimumNArgs(1),
		RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			return runAdd(cmd, app, strings.Join(args, " "), opts)
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&opts.description, "description", "d", "", "task description")
	f.StringVarP(&opts.url, "url", "u", "", "URL to attach")
	f.StringVarP(&opts.priority, "priority", "p", string(models.PriorityMedium), "priority (low, medium, high, urgent)")
	f.StringVarP(&opts.list, "list", "l", "", "list name (default: the configured default list or the inbox)")
	f.StringSliceVarP(&opts.tags, "tag", "t", nil, "tags to attach, created when missing (repeatable or comma-separated)")
	f.StringVar(&opts.due, "due", "", `due date ("2030-01-31", "tomorrow", "next friday")`)

	return cmd
}

func runAdd(cmd *cobra.Command, app *client.App, title string, opts *addOptions) error {
	ctx := cmd.Context()
	tasks := app.Services().TaskService
	out := cmd.OutOrStdout()

	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle
	}

	priority, err := models.ParsePriority(opts.priority)
	if err != nil {
		return err
	}

	var due string
	task := models.NewTask(title, uuid.Nil)
	task.Priority = priority
	if opts.description != "" {
		task.Description = pointer.ToString(opts.description)
	}
	if opts.url != "" {
		task.URL = pointer.ToString(opts.url)
	}
	if opts.due != "" {
		task.DueDate, err = utils.ParseDueDate(opts.due, app.Clock().Now())
		if err != nil {
			return err
		}
		due = task.DueDate.UTC().Format(time.DateOnly)
	}

	listRef := opts.list
	if listRef == "" {
		listRef = app.Config().App.DefaultList
	}
	if listRef != "" {
		list, err := tasks.FindList(ctx, listRef)
		switch {
		case err == nil:
			task.ListID = list.ID
		case errors.Is(err, store.ErrListNotFound) && opts.list == "":
			printWarning(out, fmt.Sprintf("Default list %q not found, adding to the inbox", listRef))
		default:
			return err
		}
	}

	for _, name := range opts.tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := tasks.EnsureTag(ctx, name)
		if err != nil {
			return err
		}
		task.AddTag(tag.ID)
	}

	created, err := tasks.CreateTask(ctx, task)
	if err != nil {
		return err
	}

	msg := "Added: " + created.Title
	if due != "" {
		msg += " (due " + due + ")"
	}
	printSuccess(out, msg)
	printInfo(out, dimColor.Sprint("  id "+shortID(created.ID)))
	return nil
}

type listOptions struct {
	list     string
	tag      string
	priority string
	search   string
	all      bool
	json     bool
}

func (r *root) newListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupTasks,
		Args:    cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return runList(cmd, app, opts)
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&opts.list, "list", "l", "", "only tasks of this list")
	f.StringVarP(&opts.tag, "tag", "t", "", "only tasks with this tag")
	f.StringVarP(&opts.priority, "priority", "p", "", "only tasks with this priority")
	f.StringVarP(&opts.search, "search", "s", "", "only tasks whose title contains this text")
	f.BoolVarP(&opts.all, "all", "a", false, "include completed tasks")
	f.BoolVar(&opts.json, "json", false, "print JSON")

	return cmd
}

func runList(cmd *cobra.Command, app *client.App, opts *listOptions) error {
	ctx := cmd.Context()
	tasks := app.Services().TaskService
	out := cmd.OutOrStdout()

	filter := models.TaskFilter{
		IncludeCompleted: opts.all || app.Config().App.ShowCompleted,
		Search:           opts.search,
	}
	if opts.list != "" {
		list, err := tasks.FindList(ctx, opts.list)
		if err != nil {
			return err
		}
		filter.ListID = &list.ID
	}
	if opts.tag != "" {
		tag, err := tasks.FindTag(ctx, opts.tag)
		if err != nil {
			return err
		}
		filter.TagID = &tag.ID
	}
	if opts.priority != "" {
		p, err := models.ParsePriority(opts.priority)
		if err != nil {
			return err
		}
		filter.Priority = &p
	}

	found, err := tasks.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}

	if len(found) == 0 {
		printInfo(out, "No tasks found.")
		return nil
	}

	lists, err := tasks.GetLists(ctx)
	if err != nil {
		return err
	}
	tags, err := tasks.GetTags(ctx)
	if err != nil {
		return err
	}

	lNames, tNames := listNames(lists), tagNames(tags)
	now := app.Clock().Now()
	for _, task := range found {
		printInfo(out, taskLine(task, lNames, tNames, now))
	}
	return nil
}

func (r *root) newDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "done <task>",
		Short:   "Mark a task as complete",
		Long:    "Mark a task as complete. <task> is an id, an id prefix or part of the title.",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			return setCompleted(cmd, app, args[0], true)
		}),
	}
}

func (r *root) newUndoCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "undo <task>",
		Short:   "Mark a task as not complete",
		Long:    "Reopen a completed task. <task> is an id, an id prefix or part of the title.",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			return setCompleted(cmd, app, args[0], false)
		}),
	}
}

func setCompleted(cmd *cobra.Command, app *client.App, ref string, completed bool) error {
	tasks := app.Services().TaskService

	task, err := resolveTask(cmd.Context(), tasks, ref)
	if err != nil {
		return err
	}
	task, err = tasks.SetCompleted(cmd.Context(), task.ID, completed)
	if err != nil {
		return err
	}

	if completed {
		printSuccess(cmd.OutOrStdout(), "Completed: "+task.Title)
	} else {
		_, _ = infoColor.Fprintf(cmd.OutOrStdout(), "↺ Reopened: %s\n", task.Title)
	}
	return nil
}

func (r *root) newDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <task>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task after confirmation. <task> is an id, an id prefix or part of the title.",
		GroupID: groupTasks,
		Args:    cobra.ExactArgs(1),
		RunE: r.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			tasks := app.Services().TaskService
			out := cmd.OutOrStdout()

			task, err := resolveTask(cmd.Context(), tasks, args[0])
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Delete %q?", task.Title)) {
				printInfo(out, "Cancelled.")
				return nil
			}

			if err := tasks.DeleteTask(cmd.Context(), task.ID); err != nil {
				return err
			}
			printSuccess(out, "Deleted: "+task.Title)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

// confirm asks a yes/no question on the command's input. Anything but "y" or
// "yes" is a no.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
