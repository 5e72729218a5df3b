package cmd

const (
	RootCmdName  = "carlot"
	RootCmdShort = "Used-car listing catalog"
	RootCmdLong  = `carlot ingests a CSV of used-car listings into an in-memory catalog of
cars and the sellers listing them, reports per-seller inventory and serves
the catalog over HTTP.`

	ReportCmdName  = "report"
	ReportCmdShort = "Print skipped rows and per-seller inventory counts"

	ServeCmdName  = "serve"
	ServeCmdShort = "Serve the catalog over HTTP"
	ServeCmdLong  = "Builds the catalog from the data file and serves /cars, /sellers and /metrics until interrupted."

	RepriceCmdName  = "reprice"
	RepriceCmdShort = "Change the price of a catalogued car"
	RepriceCmdLong  = `A positive amount sets the price. Zero or a negative amount is a discount
that must be confirmed on stdin; declining it sets the price to the
discount's magnitude instead.`

	RepairCmdName  = "repair"
	RepairCmdShort = "Replace the engine, transmission or drivetrain of a catalogued car"
)
