package catalog

// Built-in activity data. Costs are per person in USD. Each destination
// carries entries across all three budget bands and all three time slots so
// the synthesizer has supply for any preference combination.

var destinationActivities = []Activity{
	// Tokyo
	{ID: "tokyo-01", Destination: "tokyo", Name: "Visit Senso-ji Temple", Description: "Explore Tokyo's oldest temple in the historic Asakusa district", Duration: "2 hours", Category: CategoryCulture, Tags: []string{"temple", "history", "traditional"}, EstimatedCost: 0, Location: "Asakusa", TimeSlot: SlotMorning},
	{ID: "tokyo-02", Destination: "tokyo", Name: "Tsukiji Outer Market Food Tour", Description: "Experience the world's largest fish market and enjoy fresh sushi", Duration: "3 hours", Category: CategoryDining, Tags: []string{"food", "market", "sushi"}, EstimatedCost: 45, Location: "Tsukiji", TimeSlot: SlotMorning},
	{ID: "tokyo-03", Destination: "tokyo", Name: "Tokyo Skytree Observatory", Description: "Panoramic views of Tokyo from 634 meters high", Duration: "2 hours", Category: CategorySightseeing, Tags: []string{"views", "landmark"}, EstimatedCost: 25, Location: "Sumida", TimeSlot: SlotAfternoon},
	{ID: "tokyo-04", Destination: "tokyo", Name: "Shibuya Crossing Experience", Description: "Experience the world's busiest pedestrian crossing", Duration: "1 hour", Category: CategorySightseeing, Tags: []string{"landmark", "city"}, EstimatedCost: 0, Location: "Shibuya", TimeSlot: SlotEvening},
	{ID: "tokyo-05", Destination: "tokyo", Name: "Traditional Onsen Visit", Description: "Relax in natural hot springs for authentic Japanese wellness", Duration: "3 hours", Category: CategoryRelaxation, Tags: []string{"onsen", "wellness", "spa"}, EstimatedCost: 35, Location: "Hakone", TimeSlot: SlotAfternoon},
	{ID: "tokyo-06", Destination: "tokyo", Name: "Meiji Shrine Visit", Description: "Peaceful shrine dedicated to Emperor Meiji and Empress Shoken", Duration: "1.5 hours", Category: CategoryCulture, Tags: []string{"shrine", "history", "garden"}, EstimatedCost: 0, Location: "Harajuku", TimeSlot: SlotMorning},
	{ID: "tokyo-07", Destination: "tokyo", Name: "teamLab Digital Art Museum", Description: "Immersive digital art installations across borderless rooms", Duration: "2.5 hours", Category: CategoryCulture, Tags: []string{"art", "museum", "modern"}, EstimatedCost: 30, Location: "Odaiba", TimeSlot: SlotAfternoon},
	{ID: "tokyo-08", Destination: "tokyo", Name: "Kabuki Theatre Evening", Description: "Classical Japanese dance-drama at the Kabukiza theatre", Duration: "3 hours", Category: CategoryCulture, Tags: []string{"theatre", "traditional", "performance"}, EstimatedCost: 55, Location: "Ginza", TimeSlot: SlotEvening},
	{ID: "tokyo-09", Destination: "tokyo", Name: "Private Kaiseki Dinner", Description: "Multi-course seasonal haute cuisine with a private chef", Duration: "2.5 hours", Category: CategoryDining, Tags: []string{"food", "fine dining", "kaiseki"}, EstimatedCost: 140, Location: "Roppongi", TimeSlot: SlotEvening},
	{ID: "tokyo-10", Destination: "tokyo", Name: "Ginza Boutique Shopping", Description: "Flagship stores and department food halls in Tokyo's upscale district", Duration: "3 hours", Category: CategoryShopping, Tags: []string{"shopping", "fashion", "luxury"}, EstimatedCost: 60, Location: "Ginza", TimeSlot: SlotAfternoon},

	// Paris
	{ID: "paris-01", Destination: "paris", Name: "Eiffel Tower Ascent", Description: "Iconic tower visit with breathtaking views of Paris", Duration: "2 hours", Category: CategorySightseeing, Tags: []string{"landmark", "views"}, EstimatedCost: 35, Location: "Champ de Mars", TimeSlot: SlotAfternoon},
	{ID: "paris-02", Destination: "paris", Name: "Louvre Museum Tour", Description: "World's largest art museum featuring the Mona Lisa", Duration: "4 hours", Category: CategoryCulture, Tags: []string{"museum", "art", "history"}, EstimatedCost: 20, Location: "Louvre", TimeSlot: SlotMorning},
	{ID: "paris-03", Destination: "paris", Name: "Seine River Cruise", Description: "Romantic boat cruise along the Seine with city views", Duration: "1.5 hours", Category: CategoryRelaxation, Tags: []string{"romantic", "cruise", "views"}, EstimatedCost: 25, Location: "Seine River", TimeSlot: SlotEvening},
	{ID: "paris-04", Destination: "paris", Name: "French Cooking Class", Description: "Learn to cook classic French dishes with a local chef", Duration: "3 hours", Category: CategoryDining, Tags: []string{"food", "cooking", "local"}, EstimatedCost: 85, Location: "Le Marais", TimeSlot: SlotAfternoon},
	{ID: "paris-05", Destination: "paris", Name: "Montmartre Walking Tour", Description: "Explore the artistic bohemian quarter and Sacre-Coeur", Duration: "3 hours", Category: CategoryCulture, Tags: []string{"art", "walking", "history"}, EstimatedCost: 15, Location: "Montmartre", TimeSlot: SlotMorning},
	{ID: "paris-06", Destination: "paris", Name: "Versailles Palace Day Trip", Description: "Visit the opulent palace and gardens of French royalty", Duration: "6 hours", Category: CategoryCulture, Tags: []string{"palace", "history", "garden"}, EstimatedCost: 45, Location: "Versailles", TimeSlot: SlotMorning},
	{ID: "paris-07", Destination: "paris", Name: "Michelin Tasting Dinner", Description: "Seven-course tasting menu at a starred restaurant", Duration: "3 hours", Category: CategoryDining, Tags: []string{"food", "fine dining", "romantic"}, EstimatedCost: 180, Location: "Saint-Germain", TimeSlot: SlotEvening},
	{ID: "paris-08", Destination: "paris", Name: "Luxembourg Gardens Stroll", Description: "Relaxed walk through fountains, lawns and tree-lined promenades", Duration: "1.5 hours", Category: CategoryNature, Tags: []string{"garden", "walking", "relax"}, EstimatedCost: 0, Location: "6th Arrondissement", TimeSlot: SlotAfternoon},
	{ID: "paris-09", Destination: "paris", Name: "Le Marais Vintage Shopping", Description: "Independent boutiques and vintage stores in the old quarter", Duration: "2.5 hours", Category: CategoryShopping, Tags: []string{"shopping", "vintage", "fashion"}, EstimatedCost: 30, Location: "Le Marais", TimeSlot: SlotAfternoon},
	{ID: "paris-10", Destination: "paris", Name: "Champagne Bar Evening", Description: "Curated champagne flights overlooking the Opera Garnier", Duration: "2 hours", Category: CategoryNightlife, Tags: []string{"nightlife", "wine", "romantic"}, EstimatedCost: 70, Location: "Opera", TimeSlot: SlotEvening},

	// Bali
	{ID: "bali-01", Destination: "bali", Name: "Uluwatu Temple Sunset", Description: "Clifftop sea temple with kecak fire dance at dusk", Duration: "3 hours", Category: CategoryCulture, Tags: []string{"temple", "sunset", "dance"}, EstimatedCost: 15, Location: "Uluwatu", TimeSlot: SlotEvening},
	{ID: "bali-02", Destination: "bali", Name: "Nusa Dua Beach Day", Description: "White sand, calm water and beachside cabanas", Duration: "4 hours", Category: CategoryBeach, Tags: []string{"beach", "swimming", "relax"}, EstimatedCost: 10, Location: "Nusa Dua", TimeSlot: SlotMorning},
	{ID: "bali-03", Destination: "bali", Name: "Ubud Jungle Spa Ritual", Description: "Traditional Balinese massage and flower bath above the river valley", Duration: "2.5 hours", Category: CategoryWellness, Tags: []string{"spa", "wellness", "massage"}, EstimatedCost: 65, Location: "Ubud", TimeSlot: SlotAfternoon},
	{ID: "bali-04", Destination: "bali", Name: "Mount Batur Sunrise Trek", Description: "Pre-dawn volcano hike with breakfast at the summit", Duration: "6 hours", Category: CategoryAdventure, Tags: []string{"hiking", "volcano", "sunrise"}, EstimatedCost: 40, Location: "Kintamani", TimeSlot: SlotMorning},
	{ID: "bali-05", Destination: "bali", Name: "Tegallalang Rice Terraces", Description: "Walk the sculpted rice paddies and swing over the valley", Duration: "2 hours", Category: CategoryNature, Tags: []string{"nature", "views", "walking"}, EstimatedCost: 5, Location: "Tegallalang", TimeSlot: SlotAfternoon},
	{ID: "bali-06", Destination: "bali", Name: "Seafood Dinner on Jimbaran Bay", Description: "Grilled seafood with your feet in the sand", Duration: "2 hours", Category: CategoryDining, Tags: []string{"food", "seafood", "beach"}, EstimatedCost: 35, Location: "Jimbaran", TimeSlot: SlotEvening},
	{ID: "bali-07", Destination: "bali", Name: "Private Catamaran to Nusa Penida", Description: "Charter sail with snorkeling stops at Manta Bay", Duration: "7 hours", Category: CategoryBeach, Tags: []string{"beach", "snorkeling", "boat"}, EstimatedCost: 150, Location: "Nusa Penida", TimeSlot: SlotMorning},
	{ID: "bali-08", Destination: "bali", Name: "Canggu Beach Club Evening", Description: "Sunset cocktails and DJs by the infinity pool", Duration: "3 hours", Category: CategoryNightlife, Tags: []string{"nightlife", "beach", "music"}, EstimatedCost: 55, Location: "Canggu", TimeSlot: SlotEvening},

	// Rome
	{ID: "rome-01", Destination: "rome", Name: "Colosseum and Forum Tour", Description: "Guided walk through ancient Rome's arena and civic heart", Duration: "3 hours", Category: CategoryCulture, Tags: []string{"history", "ancient", "landmark"}, EstimatedCost: 40, Location: "Centro Storico", TimeSlot: SlotMorning},
	{ID: "rome-02", Destination: "rome", Name: "Vatican Museums and Sistine Chapel", Description: "Renaissance masterpieces ending under Michelangelo's ceiling", Duration: "4 hours", Category: CategoryCulture, Tags: []string{"museum", "art", "history"}, EstimatedCost: 35, Location: "Vatican City", TimeSlot: SlotMorning},
	{ID: "rome-03", Destination: "rome", Name: "Trastevere Food Walk", Description: "Supplì, carbonara and gelato across the cobbled quarter", Duration: "3 hours", Category: CategoryDining, Tags: []string{"food", "local", "walking"}, EstimatedCost: 60, Location: "Trastevere", TimeSlot: SlotEvening},
	{ID: "rome-04", Destination: "rome", Name: "Trevi Fountain and Pantheon Stroll", Description: "Classic centro passeggiata past fountains and piazzas", Duration: "2 hours", Category: CategorySightseeing, Tags: []string{"landmark", "walking"}, EstimatedCost: 0, Location: "Centro Storico", TimeSlot: SlotAfternoon},
	{ID: "rome-05", Destination: "rome", Name: "Borghese Gallery Visit", Description: "Bernini sculptures and Caravaggio canvases in a villa park", Duration: "2.5 hours", Category: CategoryCulture, Tags: []string{"art", "museum", "garden"}, EstimatedCost: 25, Location: "Villa Borghese", TimeSlot: SlotAfternoon},
	{ID: "rome-06", Destination: "rome", Name: "Private Vespa Tour at Dusk", Description: "Chauffeured vintage Vespa ride through the seven hills", Duration: "2 hours", Category: CategorySightseeing, Tags: []string{"views", "vintage", "romantic"}, EstimatedCost: 120, Location: "Aventino", TimeSlot: SlotEvening},
	{ID: "rome-07", Destination: "rome", Name: "Campo de' Fiori Market Morning", Description: "Produce stalls and espresso at the open-air market", Duration: "1.5 hours", Category: CategoryShopping, Tags: []string{"market", "food", "local"}, EstimatedCost: 10, Location: "Campo de' Fiori", TimeSlot: SlotMorning},

	// New York
	{ID: "newyork-01", Destination: "new york", Name: "Metropolitan Museum of Art", Description: "Five millennia of art along Fifth Avenue's museum mile", Duration: "3.5 hours", Category: CategoryCulture, Tags: []string{"museum", "art"}, EstimatedCost: 30, Location: "Upper East Side", TimeSlot: SlotMorning},
	{ID: "newyork-02", Destination: "new york", Name: "Central Park Loop Walk", Description: "Bow Bridge, the Mall and Bethesda Terrace on foot", Duration: "2 hours", Category: CategoryNature, Tags: []string{"park", "walking", "nature"}, EstimatedCost: 0, Location: "Central Park", TimeSlot: SlotMorning},
	{ID: "newyork-03", Destination: "new york", Name: "Broadway Show", Description: "Orchestra seats for a headline musical", Duration: "3 hours", Category: CategoryNightlife, Tags: []string{"theatre", "nightlife", "music"}, EstimatedCost: 160, Location: "Theater District", TimeSlot: SlotEvening},
	{ID: "newyork-04", Destination: "new york", Name: "Top of the Rock Observation Deck", Description: "Skyline views with the Empire State Building front and center", Duration: "1.5 hours", Category: CategorySightseeing, Tags: []string{"views", "landmark"}, EstimatedCost: 40, Location: "Midtown", TimeSlot: SlotAfternoon},
	{ID: "newyork-05", Destination: "new york", Name: "SoHo Boutique Crawl", Description: "Cast-iron blocks of designer and concept stores", Duration: "2.5 hours", Category: CategoryShopping, Tags: []string{"shopping", "fashion"}, EstimatedCost: 50, Location: "SoHo", TimeSlot: SlotAfternoon},
	{ID: "newyork-06", Destination: "new york", Name: "Chelsea Market Food Hall", Description: "Tacos, lobster rolls and doughnuts under one roof", Duration: "2 hours", Category: CategoryDining, Tags: []string{"food", "market"}, EstimatedCost: 30, Location: "Chelsea", TimeSlot: SlotAfternoon},
	{ID: "newyork-07", Destination: "new york", Name: "Speakeasy Cocktail Tour", Description: "Hidden bars of the Lower East Side with a local guide", Duration: "3 hours", Category: CategoryNightlife, Tags: []string{"nightlife", "cocktails", "bar"}, EstimatedCost: 75, Location: "Lower East Side", TimeSlot: SlotEvening},

	// Goa
	{ID: "goa-01", Destination: "goa", Name: "Palolem Beach Morning", Description: "Crescent beach swim with kayak rental on calm water", Duration: "3 hours", Category: CategoryBeach, Tags: []string{"beach", "swimming", "kayak"}, EstimatedCost: 10, Location: "Palolem", TimeSlot: SlotMorning},
	{ID: "goa-02", Destination: "goa", Name: "Old Goa Church Circuit", Description: "Basilica of Bom Jesus and Se Cathedral heritage walk", Duration: "2.5 hours", Category: CategoryCulture, Tags: []string{"history", "church", "heritage"}, EstimatedCost: 5, Location: "Old Goa", TimeSlot: SlotMorning},
	{ID: "goa-03", Destination: "goa", Name: "Spice Plantation Lunch", Description: "Plantation tour with a banana-leaf Goan thali", Duration: "3 hours", Category: CategoryDining, Tags: []string{"food", "local", "nature"}, EstimatedCost: 25, Location: "Ponda", TimeSlot: SlotAfternoon},
	{ID: "goa-04", Destination: "goa", Name: "Ayurvedic Wellness Session", Description: "Abhyanga massage and steam therapy by the dunes", Duration: "2 hours", Category: CategoryWellness, Tags: []string{"spa", "wellness", "relax"}, EstimatedCost: 45, Location: "Ashwem", TimeSlot: SlotAfternoon},
	{ID: "goa-05", Destination: "goa", Name: "Sunset Cruise on the Mandovi", Description: "River cruise with live music as the sun drops", Duration: "2 hours", Category: CategoryRelaxation, Tags: []string{"cruise", "sunset", "music"}, EstimatedCost: 20, Location: "Panaji", TimeSlot: SlotEvening},
	{ID: "goa-06", Destination: "goa", Name: "Beach Shack Night", Description: "Seafood grills and live sets at an Anjuna shack", Duration: "3 hours", Category: CategoryNightlife, Tags: []string{"nightlife", "beach", "seafood"}, EstimatedCost: 55, Location: "Anjuna", TimeSlot: SlotEvening},
}

// genericActivities back any unknown destination. The pool carries no
// destination key and must never be empty.
var genericActivities = []Activity{
	{ID: "generic-01", Name: "City Walking Tour", Description: "Explore the main attractions and historical sites", Duration: "3 hours", Category: CategoryCulture, Tags: []string{"walking", "history"}, EstimatedCost: 25, Location: "City Center", TimeSlot: SlotMorning},
	{ID: "generic-02", Name: "Local Food Experience", Description: "Taste authentic local cuisine and specialties", Duration: "2 hours", Category: CategoryDining, Tags: []string{"food", "local"}, EstimatedCost: 40, Location: "Food District", TimeSlot: SlotAfternoon},
	{ID: "generic-03", Name: "Sunset Viewpoint", Description: "Watch the sunset from the best viewpoint in the city", Duration: "1.5 hours", Category: CategorySightseeing, Tags: []string{"views", "sunset"}, EstimatedCost: 0, Location: "Viewpoint", TimeSlot: SlotEvening},
	{ID: "generic-04", Name: "Museum Visit", Description: "Discover local art, history, and culture", Duration: "2.5 hours", Category: CategoryCulture, Tags: []string{"museum", "art"}, EstimatedCost: 15, Location: "Museum District", TimeSlot: SlotAfternoon},
	{ID: "generic-05", Name: "Riverside Evening Stroll", Description: "Unhurried walk along the waterfront promenade", Duration: "1 hour", Category: CategoryRelaxation, Tags: []string{"walking", "relax"}, EstimatedCost: 0, Location: "Waterfront", TimeSlot: SlotEvening},
	{ID: "generic-06", Name: "Artisan Market Browse", Description: "Handmade crafts and souvenirs from local makers", Duration: "2 hours", Category: CategoryShopping, Tags: []string{"market", "souvenir"}, EstimatedCost: 10, Location: "Old Town", TimeSlot: SlotMorning},
}
