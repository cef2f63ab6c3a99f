package config

// DefaultDatabasePath is the default path for the vocabulary database
const DefaultDatabasePath = "./words.db"
