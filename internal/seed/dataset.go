// Package seed generates and loads demo data: nations and cities, hubs and
// destinations, and a fleet with the production vehicle mix. Generation is
// deterministic for a given Options value, so reseeding yields the same ids.
package seed

import (
	"fmt"
	"math/rand/v2"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"

	"github.com/google/uuid"
)

var namespace = uuid.MustParse("6f1d2c8e-3b53-4c2e-9a55-0d7c1f3e9b10")

type nationData struct {
	name   string
	cities []string
}

var nations = []nationData{
	{"France", []string{"Paris", "Lyon", "Marseille", "Bordeaux", "Lille", "Strasbourg", "Nantes", "Toulouse", "Nice", "Montpellier", "Rennes", "Grenoble"}},
	{"Spain", []string{"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Malaga", "Murcia", "Palma", "Las Palmas", "Bilbao", "Alicante", "Cordoba"}},
	{"Germany", []string{"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart", "Düsseldorf", "Leipzig", "Dortmund", "Essen", "Bremen", "Dresden"}},
	{"Italy", []string{"Rome", "Milan", "Naples", "Turin", "Palermo", "Genoa", "Bologna", "Florence", "Bari", "Catania", "Venice", "Verona"}},
	{"United Kingdom", []string{"London", "Birmingham", "Glasgow", "Liverpool", "Bristol", "Manchester", "Sheffield", "Leeds", "Edinburgh", "Leicester", "Coventry", "Belfast"}},
	{"Belgium", []string{"Brussels", "Antwerp", "Ghent", "Charleroi", "Liège", "Bruges", "Namur", "Leuven", "Mons", "Aalst", "Mechelen", "La Louvière"}},
	{"Netherlands", []string{"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Tilburg", "Groningen", "Almere", "Breda", "Nijmegen", "Enschede", "Apeldoorn"}},
	{"Portugal", []string{"Lisbon", "Porto", "Amadora", "Braga", "Setúbal", "Coimbra", "Queluz", "Funchal", "Cacém", "Vila Nova de Gaia", "Algueirão-Mem Martins", "Loures"}},
	{"Switzerland", []string{"Zurich", "Geneva", "Basel", "Lausanne", "Bern", "Winterthur", "Lucerne", "St. Gallen", "Lugano", "Biel/Bienne", "Thun", "Köniz"}},
	{"Austria", []string{"Vienna", "Graz", "Linz", "Salzburg", "Innsbruck", "Klagenfurt", "Villach", "Wels", "Sankt Pölten", "Dornbirn", "Wiener Neustadt", "Steyr"}},
}

var (
	streetNames     = []string{"Rue de la Paix", "Avenue des Champs-Élysées", "Boulevard Haussmann", "Rue de Rivoli", "Avenue Victor Hugo", "Rue de la Pompe", "Place de la Concorde", "Rue Lafayette", "Avenue Foch", "Boulevard Saint-Michel"}
	stationSuffixes = []string{"Gare Centrale", "Gare du Nord", "Gare du Sud", "Gare de l'Est", "Gare de l'Ouest"}
	airportSuffixes = []string{"International Airport", "Regional Airport", "Airfield", "Terminal A"}
	portSuffixes    = []string{"Port de Commerce", "Marina", "Quai des Brumes", "Terminal de Conteneurs"}
	lorryCapacities = []int{1200, 1800, 2900}
)

const (
	trainCapacity = 34800
	planeCapacity = 5600
	shipCapacity  = 870000
)

// Options controls the size of the generated dataset.
type Options struct {
	Seed            uint64
	CitiesPerNation int
	PlacesPerCity   int
	LocalServings   int
	Lorries         int
	Trains          int
	Planes          int
	Ships           int
	// MaxStock bounds the initial quantity of every load class at a hub.
	MaxStock int
}

func DefaultOptions() Options {
	return Options{
		Seed:            1,
		CitiesPerNation: 12,
		PlacesPerCity:   5,
		LocalServings:   1500,
		Lorries:         200,
		Trains:          50,
		Planes:          5,
		Ships:           10,
		MaxStock:        100000,
	}
}

type Dataset struct {
	Nations  []*geo.Nation
	Cities   []*geo.City
	Places   []*place.Place
	Vehicles []*fleet.Vehicle
}

// Count returns the number of places of kind.
func (d Dataset) Count(kind kernel.PlaceKind) int {
	n := 0
	for _, p := range d.Places {
		if p.Kind() == kind {
			n++
		}
	}
	return n
}

// Generate builds the dataset described by opts. Hubs are drawn with the
// proportions 10% train stations, 5% airports, 5% ports and the rest
// destinations; every kind appears at least once. Road vehicles start
// anywhere, trains, planes and ships at a hub of their kind.
func Generate(opts Options) (Dataset, error) {
	g := generator{rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)), opts: opts}
	if err := g.geography(); err != nil {
		return Dataset{}, err
	}
	if err := g.places(); err != nil {
		return Dataset{}, err
	}
	if err := g.fleet(); err != nil {
		return Dataset{}, err
	}
	return g.ds, nil
}

type generator struct {
	rng  *rand.Rand
	opts Options
	ds   Dataset

	citiesByNation [][]*geo.City
	hubs           map[kernel.PlaceKind][]*place.Place
}

func (g *generator) id(format string, args ...any) kernel.UUID {
	id, err := kernel.UUIDOf(uuid.NewSHA1(namespace, fmt.Appendf(nil, format, args...)))
	if err != nil {
		panic(err) // SHA1 ids are never nil
	}
	return id
}

func (g *generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

func (g *generator) geography() error {
	for _, nd := range nations {
		nation, err := geo.NewNation(g.id("nation/%s", nd.name), nd.name)
		if err != nil {
			return err
		}
		g.ds.Nations = append(g.ds.Nations, nation)

		var cities []*geo.City
		for _, name := range nd.cities[:min(g.opts.CitiesPerNation, len(nd.cities))] {
			postcode := fmt.Sprintf("%05d", 10000+g.rng.IntN(89999))
			city, err := geo.NewCity(g.id("city/%s/%s", nd.name, name), name, postcode, nation.ID())
			if err != nil {
				return err
			}
			cities = append(cities, city)
		}
		g.citiesByNation = append(g.citiesByNation, cities)
		g.ds.Cities = append(g.ds.Cities, cities...)
	}
	return nil
}

func (g *generator) places() error {
	g.hubs = map[kernel.PlaceKind][]*place.Place{}
	seq := 0
	for _, cities := range g.citiesByNation {
		for ci := range cities {
			for range g.opts.PlacesPerCity {
				kind := g.kind()
				if err := g.addPlace(seq, kind, cities, ci); err != nil {
					return err
				}
				seq++
			}
		}
	}

	for _, kind := range []kernel.PlaceKind{kernel.PlaceKindTrainStation, kernel.PlaceKindAirport, kernel.PlaceKindPort, kernel.PlaceKindDestination} {
		if g.ds.Count(kind) > 0 || len(g.ds.Cities) == 0 {
			continue
		}
		if err := g.addPlace(seq, kind, g.citiesByNation[0], 0); err != nil {
			return err
		}
		seq++
	}
	return nil
}

func (g *generator) kind() kernel.PlaceKind {
	switch r := g.rng.Float64(); {
	case r < 0.10:
		return kernel.PlaceKindTrainStation
	case r < 0.15:
		return kernel.PlaceKindAirport
	case r < 0.20:
		return kernel.PlaceKindPort
	}
	return kernel.PlaceKindDestination
}

func (g *generator) addPlace(seq int, kind kernel.PlaceKind, cities []*geo.City, ci int) error {
	city := cities[ci]
	street := fmt.Sprintf("%s %d", g.pick(streetNames), g.rng.IntN(200)+1)
	cityIDs := []kernel.UUID{city.ID()}

	switch kind {
	case kernel.PlaceKindTrainStation:
		street = fmt.Sprintf("%s %s, %s", city.Name(), g.pick(stationSuffixes), street)
	case kernel.PlaceKindAirport, kernel.PlaceKindPort:
		suffixes := airportSuffixes
		if kind == kernel.PlaceKindPort {
			suffixes = portSuffixes
		}
		street = fmt.Sprintf("%s %s, %s", city.Name(), g.pick(suffixes), street)
		// a third of the hubs also serve the next city of the nation
		if len(cities) > 1 && g.rng.IntN(3) == 0 {
			cityIDs = append(cityIDs, cities[(ci+1)%len(cities)].ID())
		}
	}

	var stock map[kernel.LoadClass]int
	if kind != kernel.PlaceKindDestination && g.opts.MaxStock > 0 {
		stock = map[kernel.LoadClass]int{
			kernel.LoadClassPackage:  g.rng.IntN(g.opts.MaxStock + 1),
			kernel.LoadClassStandard: g.rng.IntN(g.opts.MaxStock + 1),
			kernel.LoadClassWideLoad: g.rng.IntN(g.opts.MaxStock + 1),
		}
	}

	p, err := place.RestorePlace(g.id("place/%d", seq), kind, street, cityIDs, stock)
	if err != nil {
		return err
	}
	g.ds.Places = append(g.ds.Places, p)
	if kind != kernel.PlaceKindDestination {
		g.hubs[kind] = append(g.hubs[kind], p)
	}
	return nil
}

func (g *generator) fleet() error {
	var transitory []*place.Place
	for _, kind := range []kernel.PlaceKind{kernel.PlaceKindTrainStation, kernel.PlaceKindAirport, kernel.PlaceKindPort} {
		transitory = append(transitory, g.hubs[kind]...)
	}

	seq := 0
	add := func(typ fleet.Type, count int, capacity func() int, at []*place.Place) error {
		if len(at) == 0 {
			return nil
		}
		for range count {
			loc := at[g.rng.IntN(len(at))]
			v, err := fleet.NewVehicle(g.id("vehicle/%d", seq), typ, capacity(), loc.Location())
			if err != nil {
				return err
			}
			g.ds.Vehicles = append(g.ds.Vehicles, v)
			seq++
		}
		return nil
	}
	fixed := func(c int) func() int { return func() int { return c } }

	if err := add(fleet.TypeLocalServing, g.opts.LocalServings, func() int { return 185 + g.rng.IntN(116) }, g.ds.Places); err != nil {
		return err
	}
	if err := add(fleet.TypeLorry, g.opts.Lorries, func() int { return lorryCapacities[g.rng.IntN(len(lorryCapacities))] }, transitory); err != nil {
		return err
	}
	if err := add(fleet.TypeTrain, g.opts.Trains, fixed(trainCapacity), g.hubs[kernel.PlaceKindTrainStation]); err != nil {
		return err
	}
	if err := add(fleet.TypePlane, g.opts.Planes, fixed(planeCapacity), g.hubs[kernel.PlaceKindAirport]); err != nil {
		return err
	}
	return add(fleet.TypeShip, g.opts.Ships, fixed(shipCapacity), g.hubs[kernel.PlaceKindPort])
}
