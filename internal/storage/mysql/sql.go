package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, city, country)
VALUES
  (:id, :name, :city, :country)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  city       = VALUES(city),
  country    = VALUES(country),
  updated_at = CURRENT_TIMESTAMP
`

const upsertBookingsSQL = `
INSERT INTO bookings
  (id, customer_id, hotel_id, stay_begin_date, stay_end_date, number_of_guests)
VALUES
  (:id, :customer_id, :hotel_id, :stay_begin_date, :stay_end_date, :number_of_guests)
ON DUPLICATE KEY UPDATE
  customer_id      = VALUES(customer_id),
  hotel_id         = VALUES(hotel_id),
  stay_begin_date  = VALUES(stay_begin_date),
  stay_end_date    = VALUES(stay_end_date),
  number_of_guests = VALUES(number_of_guests)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listHotelsSQL = `
SELECT id, name, city, country
FROM hotels
ORDER BY id
`

const listBookingsSQL = `
SELECT id, customer_id, hotel_id, stay_begin_date, stay_end_date, number_of_guests
FROM bookings
WHERE hotel_id = ?
ORDER BY stay_begin_date, id
`

// Inclusive lower bound on the stay start; served by idx_bookings_hotel_begin.
const listBookingsSinceSQL = `
SELECT id, customer_id, hotel_id, stay_begin_date, stay_end_date, number_of_guests
FROM bookings
WHERE hotel_id = ? AND stay_begin_date >= ?
ORDER BY stay_begin_date, id
`
