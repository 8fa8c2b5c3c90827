package schipperke

/*-------------------------------------------------------------------
 *
 * Purpose:    	Remember shipname, callsign and destination from
 *		"Static and Voyage Related Data" messages so they can
 *		be combined later with position reports in the CSV
 *		log.
 *
 * Description:	Keyed by MMSI.  Receiver-scoped and in-memory only;
 *		all messages arrive on the single receive path so no
 *		locking is needed.
 *
 *--------------------------------------------------------------------*/

import "fmt"

type ship_data_s struct {
	shipname    string
	callsign    string
	destination string
}

type ship_store struct {
	ships map[int]*ship_data_s
}

func new_ship_store() *ship_store {
	return &ship_store{ships: make(map[int]*ship_data_s)}
}

func (s *ship_store) save(mmsi int, shipname string, callsign string, destination string) {
	var p = s.ships[mmsi]
	if p == nil {
		p = new(ship_data_s)
		s.ships[mmsi] = p
	}
	p.shipname = shipname
	p.callsign = callsign
	p.destination = destination
}

func (s *ship_store) get(mmsi int) *ship_data_s {
	return s.ships[mmsi]
}

// comment returns a single string suitable for a log comment column,
// or "" if the ship has not been heard from on message 5.

func (s *ship_store) comment(mmsi int) string {
	var p = s.ships[mmsi]
	if p == nil {
		return ""
	}
	if len(p.destination) > 0 {
		return fmt.Sprintf("%s, %s, dest. %s", p.shipname, p.callsign, p.destination)
	}
	return fmt.Sprintf("%s, %s", p.shipname, p.callsign)
}
