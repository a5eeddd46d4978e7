package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/config"
	"github.com/oneflow/oneflow/pkg/form"
	"github.com/oneflow/oneflow/pkg/model"
	"github.com/oneflow/oneflow/pkg/session"
	"github.com/oneflow/oneflow/pkg/store"
)

const usage = `Usage: oneflow <command> [flags]

Commands:
  login      -email -password
  signup     -email -password -name -role
  whoami
  logout
  projects   list | create | delete
  tasks      list [-project]
  analytics
`

type app struct {
	client   *api.Client
	auth     *store.AuthStore
	projects *store.ProjectStore
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	tokens := session.NewFileStore(cfg.API.TokenFile)
	client := api.NewClient(cfg.API.BaseURL, tokens, logger)
	a := &app{
		client:   client,
		auth:     store.NewAuthStore(client, tokens, logger),
		projects: store.NewProjectStore(client, logger),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args := os.Args[2:]
	switch os.Args[1] {
	case "login":
		err = a.login(ctx, args)
	case "signup":
		err = a.signup(ctx, args)
	case "whoami":
		err = a.whoami(ctx)
	case "logout":
		a.auth.Logout()
		fmt.Println("Logged out")
	case "projects":
		err = a.projectsCmd(ctx, args)
	case "tasks":
		err = a.tasksCmd(ctx, args)
	case "analytics":
		err = a.analyticsCmd(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if err := a.auth.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", a.auth.User().Name)
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	role := fs.String("role", string(model.RoleTeamMember), "admin, project_manager, team_member or sales_finance")
	fs.Parse(args)

	if err := a.auth.Signup(ctx, *email, *password, *name, model.UserRole(*role)); err != nil {
		return err
	}
	fmt.Printf("Account created for %s\n", a.auth.User().Email)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	a.auth.Restore(ctx)
	user := a.auth.User()
	if user == nil {
		return fmt.Errorf("not logged in")
	}
	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) projectsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		a.projects.Refresh(ctx)
		for _, p := range a.projects.Projects() {
			fmt.Printf("%s  %-30s %-12s %3.0f%%  %s\n", p.ID, p.Name, p.Status, p.Progress, p.Manager)
		}
		return nil
	case "create":
		fs := flag.NewFlagSet("projects create", flag.ExitOnError)
		f := form.NewProjectForm()
		fs.StringVar(&f.Name, "name", "", "project name")
		fs.StringVar(&f.Manager, "manager", "", "project manager")
		fs.StringVar(&f.StartDate, "start", "", "start date (YYYY-MM-DD)")
		fs.StringVar(&f.EndDate, "end", "", "end date (YYYY-MM-DD)")
		fs.Float64Var(&f.Budget, "budget", 0, "budget")
		fs.StringVar(&f.Description, "description", "", "description")
		status := fs.String("status", string(model.ProjectPlanned), "planned, in_progress, completed or on_hold")
		fs.Parse(args[1:])
		f.Status = model.ProjectStatus(*status)

		f.OnSuccess = func() { fmt.Println("Project created") }
		return f.Submit(ctx, a.projects)
	case "delete":
		fs := flag.NewFlagSet("projects delete", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		fs.Parse(args[1:])
		if err := a.projects.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("Project deleted")
		return nil
	default:
		return fmt.Errorf("unknown projects subcommand %q", args[0])
	}
}

func (a *app) tasksCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	projectID := fs.String("project", "", "filter by project id")
	if len(args) > 0 && args[0] == "list" {
		args = args[1:]
	}
	fs.Parse(args)

	tasks, err := a.client.Tasks.List(ctx, *projectID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		fmt.Printf("%s  %-30s %-12s %-8s %s  %.1f/%.1fh\n",
			t.ID, t.Title, t.Status, t.Priority, t.Assignee, t.HoursLogged, t.EstimatedHours)
	}
	return nil
}

func (a *app) analyticsCmd(ctx context.Context) error {
	analytics, err := a.client.Analytics.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Projects: %d  Tasks: %d/%d done\n", analytics.TotalProjects, analytics.CompletedTasks, analytics.TotalTasks)
	fmt.Printf("Hours: %.1f (%.1f billable, %.1f non-billable)\n", analytics.TotalHours, analytics.BillableHours, analytics.NonBillableHours)
	fmt.Printf("Revenue: %.2f  Cost: %.2f  Profit: %.2f\n", analytics.TotalRevenue, analytics.TotalCost, analytics.Profit)
	return nil
}
