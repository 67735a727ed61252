package domain

// Catalog returns the static offer list. The data is fixed at build time;
// callers must treat the returned slice as read-only.
func Catalog() []Offer {
	return catalog
}

var catalog = []Offer{
	{ID: "1", Name: "Starter Pack", Amount: "100 RB", Price: 100, Line: GameCredits},
	{ID: "2", Name: "Popular", Amount: "170 RB", Price: 120, OldPrice: 150, Badge: "ХИТ", Line: GameCredits},
	{ID: "3", Name: "Advanced", Amount: "350 RB", Price: 230, OldPrice: 300, Line: GameCredits},
	{ID: "4", Name: "Pro Pack", Amount: "800 RB", Price: 500, OldPrice: 650, Badge: "ВЫГОДНО", Line: GameCredits},
	{ID: "5", Name: "Mega Pack", Amount: "1700 RB", Price: 900, OldPrice: 1200, Badge: "-25%", Line: GameCredits},
	{ID: "6", Name: "Ultra Pack", Amount: "4500 RB", Price: 2100, OldPrice: 2800, Line: GameCredits},

	{ID: "s1", Name: "Starter Gold", Amount: "1000 G", Price: 99, Line: InAppGold},
	{ID: "s2", Name: "Gold Pack", Amount: "2500 G", Price: 199, OldPrice: 250, Badge: "ХИТ", Line: InAppGold},
	{ID: "s3", Name: "Mega Gold", Amount: "5000 G", Price: 350, OldPrice: 450, Badge: "ВЫГОДНО", Line: InAppGold},
	{ID: "s4", Name: "Ultra Gold", Amount: "10000 G", Price: 650, OldPrice: 900, Badge: "-28%", Line: InAppGold},

	{ID: "t1", Name: "Starter Stars", Amount: "100 ST", Price: 150, Line: MessagingCredits},
	{ID: "t2", Name: "Stars Pack", Amount: "250 ST", Price: 340, OldPrice: 400, Badge: "ХИТ", Line: MessagingCredits},
	{ID: "t3", Name: "Mega Stars", Amount: "500 ST", Price: 620, OldPrice: 750, Badge: "-17%", Line: MessagingCredits},
}
