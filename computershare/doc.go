// Package computershare reads the transaction export of a Computershare
// employee stock purchase plan.
//
// The export is a CSV file with a header line and seven columns:
//
//	Transaction Date,Effective Date,Description,FMV,Amount,Share Price,Transaction Shares
//	01/07/24,01/07/24,PAYROLL DEDUCTION,204.875,253.14,194.6312,1.3006
//	30/04/24,30/04/24,DIVIDEND REINVESTMENT,193.315,43.66,193.315,0.2258
//
// Payroll deductions are purchases funded by salary, so each one is preceded
// by a TRANSFER of the same cash into the account. Dividend reinvestments are
// purchases funded by a dividend, so each one is preceded by the DIVIDEND
// credit and recorded as a BUY.
package computershare
