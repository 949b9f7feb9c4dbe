package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/socialpulse/follower-report-api/infrastructure/integrator/xlsx"
	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting"
	"github.com/socialpulse/follower-report-api/pkg/utils"
)

// Builds the follower report from a local workbook export, for checking
// sheet changes without Google credentials.
func main() {
	var (
		file          = flag.String("file", "followers.xlsx", "path to the exported workbook")
		employeeSheet = flag.String("employees", "Employees", "employee sheet name")
		totalsSheet   = flag.String("totals", "Totals", "business-line totals sheet name")
	)
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	workbook := xlsx.New(*file, *employeeSheet, *totalsSheet)
	service := reporting.NewService(cfg, workbook)

	report, err := service.GetFollowerReport(context.Background())
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println(utils.PrettyJson(report))
}
