package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Generate a synthetic rtl_tcp capture containing one
 *		AIS burst, for feeding a receiver without a radio:
 *
 *		  $ schipperke-gen -o test.iq --mmsi 123456789 \
 *		        --lon -74.006 --lat 40.7128 --speed 12.3 --course 87.5
 *
 *		The receiver reads only from a TCP connection, so the
 *		file has to be served on the port it connects to, e.g.
 *		with a netcat listener on 127.0.0.1:2345.  Without an
 *		"RTL0" header the receiver warns and drops the first
 *		12 bytes.
 *
 *---------------------------------------------------------------*/

import (
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	schipperke "github.com/doismellburning/schipperke/src"
)

func main() {
	var out = pflag.StringP("output", "o", "test.iq", "Output file for the raw I/Q bytes.")
	var channel = pflag.IntP("channel", "c", 1, "AIS channel, 1 or 2.")
	var msgType = pflag.IntP("type", "t", 1, "Message type: 1/2/3 position, 4 base station, 5 static.")
	var mmsi = pflag.Int("mmsi", 123456789, "MMSI.")
	var lon = pflag.Float64("lon", 0, "Longitude in degrees, -W +E.")
	var lat = pflag.Float64("lat", 0, "Latitude in degrees, -S +N.")
	var speed = pflag.Float64("speed", 0, "Speed over ground in knots.")
	var course = pflag.Float64("course", 0, "Course over ground in degrees.")
	var callsign = pflag.String("callsign", "", "Call sign (message 5).")
	var shipname = pflag.String("name", "", "Vessel name (message 5).")
	var destination = pflag.String("destination", "", "Destination (message 5).")
	var pairs = pflag.IntP("samples", "n", 300000, "Buffer length in I/Q pairs.")
	pflag.Parse()

	if *channel != 1 && *channel != 2 {
		log.Fatal("channel must be 1 or 2")
	}

	var body []byte
	switch *msgType {
	case 1, 2, 3:
		body = schipperke.PackPosition(*msgType, *mmsi, *lon, *lat,
			int(math.Round(*speed*10)), int(math.Round(*course*10)))
	case 4:
		// A fixed but recognizable timestamp; positions as given.
		body = schipperke.PackBaseStation(*mmsi, 2024, 1, 1, 12, 0, 0, *lon, *lat)
	case 5:
		body = schipperke.PackStatic(*mmsi, *callsign, *shipname, *destination)
	default:
		log.Fatal("unsupported message type", "type", *msgType)
	}

	var buff = schipperke.GenBuffer(*pairs)
	schipperke.GenFrame(buff, *pairs/4, *channel, body)

	if err := os.WriteFile(*out, buff, 0644); err != nil {
		log.Fatal("write output", "err", err)
	}
	log.Info("wrote capture", "path", *out, "bytes", len(buff))
}
