package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:	Save decoded messages to a CSV log file.
 *
 * Description: Rather than the terse terminal lines, write separated
 *		properties into CSV format for easy reading and later
 *		processing.
 *
 *		There are two alternatives here.
 *
 *		-L logfile		Specify full file path.
 *
 *		-l logdir		Daily names will be created here.
 *
 *		Use one or the other but not both.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

const message_log_header = "chan,utime,isotime,type,mmsi,latitude,longitude,speed_kmh,course,callsign,shipname,destination,comment"

type message_log struct {
	daily_names bool
	path        string
	fp          *os.File
	open_fname  string
	tfmt        *strftime.Strftime // Optional extra human timestamp format.
}

/*------------------------------------------------------------------
 *
 * Function:	message_log_init
 *
 * Purpose:	Initialization at start of application.
 *
 * Inputs:	daily_names	- True if daily names should be
 *				  generated.  In this case path is a
 *				  directory; otherwise it is the file
 *				  name.
 *
 *		path		- Log file name or just directory.
 *				  Empty string disables the feature.
 *
 *		timestamp_format - strftime format for a human
 *				  timestamp in the isotime column, or
 *				  "" for ISO 8601 UTC.
 *
 *------------------------------------------------------------------*/

func message_log_init(daily_names bool, path string, timestamp_format string) *message_log {
	var l = new(message_log)
	l.daily_names = daily_names

	if len(path) == 0 {
		return l
	}

	if len(timestamp_format) > 0 {
		var f, err = strftime.New(timestamp_format)
		if err != nil {
			log.Error("bad timestamp format, using ISO 8601", "format", timestamp_format, "err", err)
		} else {
			l.tfmt = f
		}
	}

	if daily_names {
		var stat, statErr = os.Stat(path)
		if statErr == nil {
			if stat.IsDir() {
				l.path = path
			} else {
				log.Error("log location is not a directory, using \".\"", "path", path)
				l.path = "."
			}
		} else {
			// Doesn't exist.  Try to create it.
			// Parent directory must exist; no "mkdir -p" here.
			if mkdirErr := os.Mkdir(path, 0755); mkdirErr == nil {
				log.Info("log location created", "path", path)
				l.path = path
			} else {
				log.Error("can't create log location, using \".\"", "path", path, "err", mkdirErr)
				l.path = "."
			}
		}
	} else {
		// Single file.  Typically logrotate would keep the size
		// under control.
		l.path = path
	}

	return l
}

/*------------------------------------------------------------------
 *
 * Function:	write
 *
 * Purpose:	Append one decoded message to the log file.
 *
 * Inputs:	channel	- AIS channel where heard, 1 or 2.
 *
 *		m	- Decoded message.
 *
 *		ships	- Static-data store, for the comment column.
 *
 *------------------------------------------------------------------*/

func (l *message_log) write(channel int, m *ais_msg_t, ships *ship_store) {
	if len(l.path) == 0 {
		return
	}

	var now = time.Now().UTC()

	if l.daily_names {
		// Generate the file name from current date, UTC.
		var fname = now.Format("2006-01-02.log")

		// Close current file if the name has changed.
		if l.fp != nil && fname != l.open_fname {
			l.term()
		}

		if l.fp == nil {
			l.open(filepath.Join(l.path, fname))
			l.open_fname = fname
		}
	} else if l.fp == nil {
		l.open(l.path)
	}

	if l.fp == nil {
		return
	}

	var itime string
	if l.tfmt != nil {
		itime = l.tfmt.FormatString(now)
	} else {
		itime = now.Format("2006-01-02T15:04:05Z")
	}

	var lat, lon, speed, course string
	switch m.msg_type {
	case 1, 2, 3:
		lat = fmt.Sprintf("%.6f", m.lat)
		lon = fmt.Sprintf("%.6f", m.lon)
		speed = fmt.Sprintf("%.1f", m.speed_kmh())
		course = fmt.Sprintf("%.1f", m.course_deg())
	case 4:
		lat = fmt.Sprintf("%.6f", m.lat)
		lon = fmt.Sprintf("%.6f", m.lon)
	}

	var record = []string{
		strconv.Itoa(channel),
		strconv.FormatInt(now.Unix(), 10),
		itime,
		strconv.Itoa(m.msg_type),
		fmt.Sprintf("%09d", m.mmsi),
		lat,
		lon,
		speed,
		course,
		trim_field_text(m.callsign),
		trim_field_text(m.shipname),
		trim_field_text(m.destination),
		ships.comment(m.mmsi),
	}

	var w = csv.NewWriter(l.fp)
	w.Write(record)
	w.Flush()
}

func (l *message_log) open(full_path string) {
	// See if the file already exists.  A header is written only when
	// this will be the first line.
	var _, statErr = os.Stat(full_path)
	var already_there = statErr == nil

	var f, openErr = os.OpenFile(full_path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if openErr != nil {
		log.Error("can't open log file for write", "path", full_path, "err", openErr)
		l.path = ""
		return
	}

	log.Info("opening log file", "path", full_path)
	l.fp = f

	if !already_there {
		fmt.Fprintf(l.fp, "%s\n", message_log_header)
	}
}

func (l *message_log) term() {
	if l.fp != nil {
		l.fp.Close()
		l.fp = nil
		l.open_fname = ""
	}
}

// MessageLogInit is the exported entry used by the CLI.

func MessageLogInit(daily_names bool, path string, timestamp_format string) *message_log {
	return message_log_init(daily_names, path, timestamp_format)
}
