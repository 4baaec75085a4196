package app

// MinScore is the floor applied after every score change; penalties never
// push a game below it.
const MinScore = 0
