package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:4000"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "hosts":
		hostsCmd(apiURL, args)
	case "book":
		bookCmd(apiURL, args)
	case "list":
		listCmd(apiURL)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Seeder - Development tool that fills a local backend with listings and bookings

USAGE:
  seeder <command> [options]

COMMANDS:
  hosts     Register host users and create places for each
  book      Register a guest and book places that already exist
  list      Print every place
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:4000)

EXAMPLES:
  # Three hosts with two places each
  seeder hosts --count=3 --places=2

  # Hosts whose places carry a photo fetched by the backend
  seeder hosts --photo=https://picsum.photos/id/1018/800/600.jpg

  # One guest booking the first four places for three nights
  seeder book --count=4 --nights=3`)
}

var sampleTitles = []string{
	"Cabin by the lake",
	"Loft in the old town",
	"Beach house with a view",
	"Farm stay",
	"Studio near the station",
}

var samplePerks = [][]string{
	{"wifi", "parking"},
	{"wifi", "tv"},
	{"pets", "entrance", "radio"},
	{"parking"},
	{"wifi", "tv", "pets"},
}

func hostsCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("hosts", flag.ExitOnError)
	count := fs.Int("count", 2, "Number of host users to create")
	perHost := fs.Int("places", 2, "Number of places per host")
	photo := fs.String("photo", "", "Image URL the backend downloads for every place")
	fs.Parse(args)

	if *count < 1 || *perHost < 1 {
		fmt.Println("Error: --count and --places must be at least 1")
		os.Exit(1)
	}

	fmt.Println("=== Seeder: Hosts ===")
	fmt.Println()

	created := 0
	for i := 0; i < *count; i++ {
		client := NewAPIClient(apiURL)

		fmt.Printf("[%d/%d] Registering host... ", i+1, *count)
		host, err := client.RegisterAndLogin(fmt.Sprintf("host%d", i+1))
		if err != nil {
			fmt.Printf("FAILED\n  Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK (%s)\n", host.Email)

		for j := 0; j < *perHost; j++ {
			n := created % len(sampleTitles)
			input := PlaceInput{
				Title:       sampleTitles[n],
				Address:     fmt.Sprintf("%d Seed Street", 10+created),
				AddedPhotos: []string{},
				Description: "Created by the seeder.",
				Perks:       samplePerks[n],
				CheckIn:     14,
				CheckOut:    11,
				MaxGuests:   2 + n,
				Price:       60 + 20*n,
			}

			if *photo != "" {
				name, err := client.UploadByLink(*photo)
				if err != nil {
					fmt.Printf("  Warning: photo download failed: %v\n", err)
				} else {
					input.AddedPhotos = append(input.AddedPhotos, name)
				}
			}

			place, err := client.CreatePlace(input)
			if err != nil {
				fmt.Printf("  FAILED to create place: %v\n", err)
				os.Exit(1)
			}
			created++
			fmt.Printf("  + %s (%s) $%d/night\n", place.Title, place.ID, place.Price)
		}
	}

	fmt.Println()
	fmt.Printf("Created %d places for %d hosts.\n", created, *count)
}

func bookCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	count := fs.Int("count", 1, "Number of places to book")
	nights := fs.Int("nights", 2, "Length of each stay")
	start := fs.String("from", time.Now().AddDate(0, 0, 7).Format("2006-01-02"), "First check-in date (YYYY-MM-DD)")
	fs.Parse(args)

	checkIn, err := time.Parse("2006-01-02", *start)
	if err != nil {
		fmt.Printf("Error: invalid --from date: %v\n", err)
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	places, err := client.ListPlaces()
	if err != nil {
		fmt.Printf("Failed to list places: %v\n", err)
		os.Exit(1)
	}
	if len(places) == 0 {
		fmt.Println("No places to book. Run 'seeder hosts' first.")
		os.Exit(1)
	}
	if *count > len(places) {
		*count = len(places)
	}

	fmt.Println("=== Seeder: Bookings ===")
	fmt.Println()

	fmt.Print("Registering guest... ")
	guest, err := client.RegisterAndLogin("guest")
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%s)\n", guest.Email)

	for i := 0; i < *count; i++ {
		place := places[i]
		checkOut := checkIn.AddDate(0, 0, *nights)

		booking, err := client.Book(BookingInput{
			Place:          place.ID,
			CheckIn:        checkIn.Format("2006-01-02"),
			CheckOut:       checkOut.Format("2006-01-02"),
			NumberOfGuests: 1,
			Name:           guest.Name,
			Phone:          "+1 555 0100",
			Price:          *nights * place.Price,
		})
		if err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %s, %s to %s ($%d)\n", i+1, *count, place.Title,
			checkIn.Format("Jan 2"), checkOut.Format("Jan 2"), booking.Price)

		checkIn = checkOut
	}

	bookings, err := client.ListBookings()
	if err != nil {
		fmt.Printf("Failed to list bookings: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Printf("Guest %s now has %d booking(s).\n", guest.Name, len(bookings))
}

func listCmd(apiURL string) {
	client := NewAPIClient(apiURL)

	places, err := client.ListPlaces()
	if err != nil {
		fmt.Printf("Failed to list places: %v\n", err)
		os.Exit(1)
	}

	for _, p := range places {
		fmt.Printf("%s  %-28s  $%-5d  guests:%d  photos:%d  owner:%s\n",
			p.ID, p.Title, p.Price, p.MaxGuests, len(p.Photos), p.Owner)
	}
	fmt.Printf("\n%d place(s)\n", len(places))
}
