package seeds

func SeedAll() error {
	if err := SeedMenu(); err != nil {
		return err
	}
	if err := SeedGallery(); err != nil {
		return err
	}
	return nil
}
