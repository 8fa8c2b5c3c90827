package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Main program for "schipperke", an AIS receiver fed by
 *		an rtl_tcp sample stream:
 *
 *			Channelizer for AIS 1 / AIS 2.
 *			GMSK FM demodulator.
 *			HDLC frame decoder with CRC-16-CCITT.
 *			ITU-R M.1371-5 message decoding (1/2/3, 4, 5).
 *
 *		Decoded traffic goes to stdout, one line per message.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	schipperke "github.com/doismellburning/schipperke/src"
)

func main() {
	var configPath = pflag.StringP("config", "c", "", "Path to YAML config file.")
	var host = pflag.StringP("host", "H", "", "rtl_tcp host (default 127.0.0.1).")
	var port = pflag.IntP("port", "p", 0, "rtl_tcp port (default 2345).")
	var logFile = pflag.StringP("logfile", "L", "", "Append decoded messages to this CSV file.")
	var logDir = pflag.StringP("logdir", "l", "", "Write daily CSV files into this directory.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "'strftime' format for log timestamps.")
	var metricsAddr = pflag.StringP("metrics", "M", "", "Serve Prometheus metrics on this address, e.g. :9100.")
	var color = pflag.BoolP("color", "C", false, "Colorize decoded messages.")
	var verbose = pflag.BoolP("verbose", "v", false, "Debug logging.")
	pflag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var config, configErr = schipperke.LoadConfig(*configPath)
	if configErr != nil {
		log.Fatal("config", "err", configErr)
	}

	// Flags override file values.
	if *host != "" {
		config.Host = *host
	}
	if *port != 0 {
		config.Port = *port
	}
	if *logFile != "" {
		config.LogFile = *logFile
	}
	if *logDir != "" {
		config.LogDir = *logDir
	}
	if *timestampFormat != "" {
		config.TimestampFormat = *timestampFormat
	}
	if *metricsAddr != "" {
		config.MetricsAddr = *metricsAddr
	}
	if *color {
		config.Color = true
	}

	if config.LogFile != "" && config.LogDir != "" {
		log.Fatal("use --logfile or --logdir but not both")
	}

	schipperke.TextColorInit(config.Color)

	if config.MetricsAddr != "" {
		schipperke.MetricsServe(config.MetricsAddr)
	}

	var receiver = schipperke.NewReceiver()

	if config.LogFile != "" {
		receiver.SetMessageLog(schipperke.MessageLogInit(false, config.LogFile, config.TimestampFormat))
	} else if config.LogDir != "" {
		receiver.SetMessageLog(schipperke.MessageLogInit(true, config.LogDir, config.TimestampFormat))
	}

	var source, openErr = schipperke.IQOpen(config.Host, config.Port)
	if openErr != nil {
		log.Fatal("open sample source", "err", openErr)
	}

	var runErr = receiver.Run(source, os.Stdout)
	source.Close()

	var status = 0
	if runErr != nil {
		log.Error("run", "err", runErr)
		status = 1
	}
	fmt.Printf("\n status = %d \n", status)
	os.Exit(status)
}
