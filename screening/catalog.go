package screening

// The program catalog. Rules register in program-code order so that
// responses list eligible programs deterministically.
func init() {
	for _, r := range []Rule{
		ruleChildDependentCareTaxCredit,  // S2R001
		ruleInfantsToddlers,              // S2R003
		ruleChildTaxCredit,               // S2R004
		ruleRentalAssistance,             // S2R005
		ruleEarnedIncomeTaxCredit,        // S2R006
		ruleSNAP,                         // S2R007
		ruleHeadStart,                    // S2R008
		ruleAfterSchoolSystem,            // S2R009
		ruleCashAssistance,               // S2R010
		ruleQualifiedHealthPlans,         // S2R011
		ruleSTAR,                         // S2R012
		ruleHousingProgram,               // S2R013
		ruleSeniorHomeownersExemption,    // S2R014
		ruleSCRIE,                        // S2R015
		rulePreKForAll,                   // S2R016
		ruleDisabilityHomeownerExemption, // S2R017
		ruleVeteransPropertyTaxExemption, // S2R018
		ruleHeatingAssistance,            // S2R019
		ruleUnemploymentInsurance,        // S2R021
		ruleWIC,                          // S2R022
		ruleChildHealthPlus,              // S2R023
		ruleNYCHAResidentEmployment,      // S2R024
		ruleOlderAdultEmployment,         // S2R025
		ruleAdultEducation,               // S2R026
		ruleCSFP,                         // S2R027
		ruleLearnEarn,                    // S2R028
		ruleNurseFamilyPartnership,       // S2R029
		ruleSummerYouthEmployment,        // S2R030
		ruleNYCCare,                      // S2R031
		ruleIDNYC,                        // S2R032
		ruleCoolingAssistance,            // S2R033
		ruleFairFares,                    // S2R034
		rulePublicHousing,                // S2R035
		ruleYouthWorkforce,               // S2R036
		ruleHomeCareServices,             // S2R037
		ruleMedicaidPregnantWomen,        // S2R038
		ruleFreeTaxPrep,                  // S2R039
		ruleChildCareVoucher,             // S2R040
		ruleLifeline,                     // S2R043
		ruleFinancialEmpowermentCenters,  // S2R045
		ruleCOVID19Vaccines,              // S2R046
		ruleNYConnects,                   // S2R047
		ruleAffordableConnectivity,       // S2R053
		ruleBigAppleConnect,              // S2R054
		ruleHousingConnect,               // S2R055
		ruleCommunityFoodConnection,      // S2R056
		ruleThreeKForAll,                 // S2R085
	} {
		Register(r)
	}
}
