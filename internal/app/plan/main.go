package plan

import (
	"bitbucket.org/almantas/shiftplan/internal/pkg/cmdapp"
	"github.com/spf13/cobra"

	"github.com/heptiolabs/healthcheck"
)

var appName = "Shift Plan Service"

var rootCmd = &cobra.Command{
	Use:   "planService",
	Short: appName,
	Long:  `HTTP server to assign production lines to employees and schedule orders for one shift`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8080)
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	var data ServiceData
	data.health = healthcheck.NewHandler()
	data.health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(200))

	err := initMetrics(&data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	data.Port = cmdapp.Config.GetInt("port")

	err = StartWebServer(&data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}
