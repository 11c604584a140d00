package api_test

import "strconv"

func itemID(id int64) string {
	return strconv.FormatInt(id, 10)
}
