// Package modhex converts raw hardware OTP identifiers into their canonical
// encoded form.
//
// Token Format:
//
//   - Raw: "ubnu" followed by 8 decimal digits (12 characters)
//   - Encoded: "ubnu" followed by 8 symbols of the alphabet c b d e f g h i j k
//
// The digit-to-symbol mapping is a fixed table, not a base conversion:
//
//	0->c 1->b 2->d 3->e 4->f 5->g 6->h 7->i 8->j 9->k
//
// A device usually emits more than 12 characters per button press. ParseRaw
// accepts such a line and returns its first 12 characters when they have the
// raw shape.
package modhex
